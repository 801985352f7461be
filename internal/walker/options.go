package walker

import (
	"strings"

	"github.com/bethropolis/sql-bundler/internal/logger"
)

// DefaultExtension is the suffix collected when none is configured
const DefaultExtension = ".sql"

// Options configures Collect
type Options struct {
	Logger    logger.Interface
	Extension string // lower-cased, with leading dot
	Recursive bool
	Exclude   map[string]struct{} // absolute paths never collected
}

func defaultOptions() Options {
	return Options{
		Logger:    logger.Noop{},
		Extension: DefaultExtension,
		Recursive: true,
		Exclude:   map[string]struct{}{},
	}
}

// Option is a functional option for configuring Options
type Option func(*Options)

// WithLogger sets a custom logger for the walker
func WithLogger(l logger.Interface) Option {
	return func(opts *Options) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// WithExtension sets the file suffix to collect, with or without the leading dot
func WithExtension(ext string) Option {
	return func(opts *Options) {
		if ext = NormalizeExtension(ext); ext != "" {
			opts.Extension = ext
		}
	}
}

// WithRecursive selects recursive traversal; false restricts collection to the root directory
func WithRecursive(recursive bool) Option {
	return func(opts *Options) {
		opts.Recursive = recursive
	}
}

// WithExclude never collects the given absolute path
func WithExclude(absPath string) Option {
	return func(opts *Options) {
		if absPath != "" {
			opts.Exclude[absPath] = struct{}{}
		}
	}
}

// NormalizeExtension lower-cases ext and ensures a leading dot
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
	if ext == "" {
		return ""
	}
	return "." + ext
}
