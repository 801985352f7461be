// Package config resolves settings from flags, SQLBUNDLER_* environment variables and an optional config file
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/sql-bundler/internal/ignore"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is overridden at build time with -ldflags "-X .../config.Version=..."
var Version = "1.0.0"

// EnvPrefix prefixes environment overrides, e.g. SQLBUNDLER_IGNORE=temp,backup
const EnvPrefix = "SQLBUNDLER"

// Flag names
const (
	FlagIgnore      = "ignore"
	FlagFlat        = "flat"
	FlagExtension   = "ext"
	FlagGitignore   = "gitignore"
	FlagShowSkipped = "show-skipped"
	FlagNoProgress  = "no-progress"
	FlagVerbose     = "verbose"
	FlagQuiet       = "quiet"
	FlagLogLevel    = "log-level"
	FlagNoColor     = "no-color"
	FlagConfig      = "config"
	FlagVersion     = "version"
)

// Config holds all application configuration settings
type Config struct {
	// Positional arguments
	InputDir   string
	OutputFile string

	// Bundling settings
	Ignore    []string
	Flat      bool
	Extension string
	Gitignore bool

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool

	// Progress is drawn only on an interactive stderr
	NoProgress   bool
	ShowProgress bool

	ConfigFile  string
	ShowVersion bool
	Version     string
}

// Bind declares the command-line flags on cmd
func Bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringArray(FlagIgnore, nil, "Folder names or folder paths to exclude (comma-separated or repeated, no effect with --flat)")
	flags.Bool(FlagFlat, false, "Only bundle files directly inside the input directory")
	flags.String(FlagExtension, ".sql", "File extension to bundle")
	flags.Bool(FlagGitignore, false, "Also skip files excluded by .gitignore files in the input tree")
	flags.Bool(FlagShowSkipped, false, "Show a list of skipped files/directories and reasons at the end")
	flags.Bool(FlagNoProgress, false, "Disable the progress bar")
	flags.BoolP(FlagVerbose, "v", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flags.BoolP(FlagQuiet, "q", false, "Suppress INFO messages (only show WARN, ERROR)")
	flags.String(FlagLogLevel, "", "Set the logging level (DEBUG, INFO, WARN, ERROR, NONE)")
	flags.Bool(FlagNoColor, false, "Disable color output")
	flags.String(FlagConfig, "", "Read settings from a YAML, TOML or JSON file")
	flags.Bool(FlagVersion, false, "Show version information")
}

// Load resolves the configuration for cmd. Precedence: explicit flag,
// environment variable, config file, flag default.
func Load(cmd *cobra.Command, args []string, stderr io.Writer) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("config: failed to bind flags: %w", err)
	}

	if path := v.GetString(FlagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read '%s': %w", path, err)
		}
	}

	c := &Config{
		Ignore:      ignore.SplitTokens(ignoreValues(cmd, v)),
		Flat:        v.GetBool(FlagFlat),
		Extension:   v.GetString(FlagExtension),
		Gitignore:   v.GetBool(FlagGitignore),
		ShowSkipped: v.GetBool(FlagShowSkipped),
		NoProgress:  v.GetBool(FlagNoProgress),
		Verbose:     v.GetBool(FlagVerbose),
		Quiet:       v.GetBool(FlagQuiet),
		LogLevel:    v.GetString(FlagLogLevel),
		NoColor:     v.GetBool(FlagNoColor),
		ConfigFile:  v.GetString(FlagConfig),
		ShowVersion: v.GetBool(FlagVersion),
		Version:     Version,
	}
	if len(args) > 0 {
		c.InputDir = args[0]
	}
	if len(args) > 1 {
		c.OutputFile = args[1]
	}

	// Determine if colors and progress should be used
	terminal := IsTerminal(stderr)
	c.UseColors = !c.NoColor && os.Getenv("NO_COLOR") == "" && terminal
	c.ShowProgress = !c.NoProgress && !c.Quiet && terminal

	return c, nil
}

// ignoreValues returns the raw --ignore values. Flag values are taken verbatim
// and env/config strings are not split on whitespace, so folder names may
// contain spaces or quotes; only commas separate tokens.
func ignoreValues(cmd *cobra.Command, v *viper.Viper) []string {
	flags := cmd.Flags()
	if flags.Changed(FlagIgnore) {
		values, _ := flags.GetStringArray(FlagIgnore)
		return values
	}

	switch value := v.Get(FlagIgnore).(type) {
	case nil:
		return nil
	case string:
		return []string{value}
	case []string:
		return value
	case []interface{}:
		values := make([]string, 0, len(value))
		for _, item := range value {
			values = append(values, fmt.Sprint(item))
		}
		return values
	default:
		return []string{fmt.Sprint(value)}
	}
}

// IsTerminal reports whether w is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
