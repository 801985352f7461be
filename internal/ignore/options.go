package ignore

import "github.com/bethropolis/sql-bundler/internal/logger"

// Option configures a Matcher
type Option func(*Matcher)

// WithLogger sets the logger used for rule diagnostics
func WithLogger(l logger.Interface) Option {
	return func(m *Matcher) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithGitignore makes the matcher honour .gitignore files under the root
func WithGitignore(enabled bool) Option {
	return func(m *Matcher) {
		m.useGitignore = enabled
	}
}
