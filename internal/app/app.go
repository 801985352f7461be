// Package app runs the bundling pipeline: validate, collect, prepare output, emit, report
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/sql-bundler/internal/config"
	"github.com/bethropolis/sql-bundler/internal/ignore"
	"github.com/bethropolis/sql-bundler/internal/logger"
	"github.com/bethropolis/sql-bundler/internal/printer"
	"github.com/bethropolis/sql-bundler/internal/progress"
	"github.com/bethropolis/sql-bundler/internal/summary"
	"github.com/bethropolis/sql-bundler/internal/walker"
	"github.com/fatih/color"
)

// BundleResult describes a completed bundle
type BundleResult = summary.BundleResult

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	stderr io.Writer
}

// New creates a new App instance logging to stderr
func New(cfg *config.Config, stderr io.Writer) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(stderr, cfg.Verbose, cfg.UseColors)

	// Log level overrides verbose/quiet
	if cfg.LogLevel != "" {
		if _, ok := logger.ParseLevel(cfg.LogLevel); !ok {
			log.Warn("Unknown log level %q, keeping %s", cfg.LogLevel, levelName(cfg))
		}
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		stderr: stderr,
	}
}

func levelName(cfg *config.Config) string {
	if cfg.Verbose {
		return "DEBUG"
	}
	return "INFO"
}

// Run bundles cfg.InputDir into cfg.OutputFile. Errors wrap ErrValidation,
// ErrNoFiles or are *IOError.
func (a *App) Run() (BundleResult, error) {
	startTime := time.Now()
	cfg := a.cfg

	a.log.Debug("Input directory: %s", cfg.InputDir)
	a.log.Debug("Output file: %s", cfg.OutputFile)
	a.log.Debug("Extension: %s, flat: %v, gitignore: %v", cfg.Extension, cfg.Flat, cfg.Gitignore)
	if cfg.ConfigFile != "" {
		a.log.Debug("Config file: %s", cfg.ConfigFile)
	}

	// --- Validate ---
	absInputDir, absOutput, err := a.validate()
	if err != nil {
		return BundleResult{}, err
	}

	// --- Collect ---
	files, err := a.collect(absInputDir, absOutput)
	if err != nil {
		return BundleResult{}, err
	}

	// --- Prepare output and emit ---
	written, err := a.emit(files, absOutput)
	if err != nil {
		return BundleResult{}, err
	}

	// --- Report ---
	result := BundleResult{
		FileCount:    len(files),
		IgnoreRules:  cfg.Ignore,
		FlatMode:     cfg.Flat,
		OutputPath:   cfg.OutputFile,
		BytesWritten: written,
		Duration:     time.Since(startTime),
	}
	summary.DisplayResults(a.log, result)
	return result, nil
}

func (a *App) validate() (string, string, error) {
	absInputDir, err := filepath.Abs(a.cfg.InputDir)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid input directory path '%s': %v", ErrValidation, a.cfg.InputDir, err)
	}

	dirInfo, err := os.Stat(absInputDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", "", fmt.Errorf("%w: input directory '%s' does not exist", ErrValidation, a.cfg.InputDir)
		}
		return "", "", fmt.Errorf("%w: could not access input directory '%s': %v", ErrValidation, a.cfg.InputDir, err)
	}
	if !dirInfo.IsDir() {
		return "", "", fmt.Errorf("%w: input path '%s' is not a directory", ErrValidation, a.cfg.InputDir)
	}

	absOutput, err := filepath.Abs(a.cfg.OutputFile)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid output path '%s': %v", ErrValidation, a.cfg.OutputFile, err)
	}
	return absInputDir, absOutput, nil
}

func (a *App) collect(absInputDir, absOutput string) ([]walker.CandidateFile, error) {
	cfg := a.cfg

	var rules []ignore.Rule
	if cfg.Flat {
		if len(cfg.Ignore) > 0 {
			a.log.Warn("--ignore has no effect together with --flat")
		}
	} else if len(cfg.Ignore) > 0 {
		rules = ignore.ParseRules(cfg.Ignore, a.log)
		a.log.Info("Using ignore rules: %v", cfg.Ignore)
	}

	matcher, err := ignore.New(absInputDir, rules,
		ignore.WithLogger(a.log),
		ignore.WithGitignore(cfg.Gitignore && !cfg.Flat),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	a.log.Info("Scanning directory: %s", absInputDir)
	files, skipped, err := walker.Collect(absInputDir, matcher,
		walker.WithLogger(a.log),
		walker.WithExtension(cfg.Extension),
		walker.WithRecursive(!cfg.Flat),
		walker.WithExclude(absOutput),
	)
	if err != nil {
		return nil, &IOError{Op: "scan", Path: absInputDir, Err: err}
	}

	if cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skipped, a.stderr)
	}

	if len(files) == 0 {
		ext := walker.NormalizeExtension(cfg.Extension)
		if ext == "" {
			ext = walker.DefaultExtension
		}
		return nil, fmt.Errorf("%w: no %s files found in '%s'", ErrNoFiles, ext, cfg.InputDir)
	}
	a.log.Debug("Collected %d files", len(files))
	return files, nil
}

// emit writes the bundle. The output is truncated first; a failed run may
// leave a partial file behind.
func (a *App) emit(files []walker.CandidateFile, outputPath string) (written int64, err error) {
	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return 0, &IOError{Op: "create output directory", Path: outputDir, Err: err}
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return 0, &IOError{Op: "open output file", Path: outputPath, Err: err}
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = &IOError{Op: "close output file", Path: outputPath, Err: closeErr}
		}
	}()

	p := printer.New(file)
	bar := progress.New(a.stderr, len(files), a.cfg.ShowProgress)
	defer bar.Finish()

	processErr := walker.Process(files, func(candidate walker.CandidateFile, content []byte) error {
		a.log.Debug("Bundling %s (%d bytes)", candidate.RelativePath, len(content))
		if err := p.PrintFile(candidate.Name, content); err != nil {
			return &IOError{Op: "write", Path: outputPath, Err: err}
		}
		bar.Advance(candidate.RelativePath)
		return nil
	})
	flushErr := p.Flush()

	if processErr != nil {
		var ioErr *IOError
		if !errors.As(processErr, &ioErr) {
			processErr = &IOError{Op: "read source", Err: processErr}
		}
		return p.BytesWritten(), processErr
	}
	if flushErr != nil {
		return p.BytesWritten(), &IOError{Op: "write", Path: outputPath, Err: flushErr}
	}
	return p.BytesWritten(), nil
}
