// Package ignore decides which folders are excluded from a bundle
package ignore

import (
	"github.com/bethropolis/sql-bundler/internal/logger"
	gitignore "github.com/denormal/go-gitignore"
)

// Kind classifies an ignore rule
type Kind int

const (
	// KindName matches any folder with the given name, at any depth
	KindName Kind = iota
	// KindPathPrefix matches one folder, given by path, and everything under it
	KindPathPrefix
)

func (k Kind) String() string {
	if k == KindPathPrefix {
		return "path"
	}
	return "name"
}

// Rule is a single parsed --ignore token
type Rule struct {
	Raw        string // token as supplied by the user
	Normalized string // trimmed of whitespace and surrounding separators
	Kind       Kind
	Prefix     string // absolute, lower-cased prefix for KindPathPrefix
}

// Matcher reports whether candidate files fall under any ignore rule
type Matcher struct {
	rootDir string
	rules   []Rule
	logger  logger.Interface

	// Opt-in .gitignore support
	useGitignore bool
	repoIgnore   gitignore.GitIgnore
}
