package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/sql-bundler/internal/logger"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates a Matcher for files under rootDir
func New(rootDir string, rules []Rule, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	m := &Matcher{
		rootDir: absRootDir,
		rules:   append([]Rule(nil), rules...),
		logger:  logger.Noop{},
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.useGitignore {
		m.loadGitignore()
	}
	return m, nil
}

// loadGitignore reads every .gitignore below the root. Failures leave the
// matcher without gitignore rules rather than aborting the bundle.
func (m *Matcher) loadGitignore() {
	m.logger.Debug("ignore.New: Loading .gitignore files under %s", m.rootDir)

	repo, err := gitignore.NewRepository(m.rootDir)
	if err != nil {
		m.logger.Warn("Could not load .gitignore files from '%s': %v", m.rootDir, err)
		return
	}
	m.repoIgnore = repo
}
