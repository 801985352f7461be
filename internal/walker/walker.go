package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/sql-bundler/internal/ignore"
)

// Collect gathers the files under rootDir that belong in the bundle, sorted by
// full path. Ignore rules only apply in recursive mode. An empty result is not an error.
func Collect(rootDir string, matcher *ignore.Matcher, opts ...Option) ([]CandidateFile, []SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, nil, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	c := &collector{
		root:    absRootDir,
		options: options,
		matcher: matcher,
		tracker: NewSkippedTracker(16),
	}

	options.Logger.Debug("walker.Collect started. Root: %s, Recursive: %v, Extension: %s",
		absRootDir, options.Recursive, options.Extension)

	if options.Recursive {
		err = filepath.WalkDir(absRootDir, c.visit)
	} else {
		err = c.listTopLevel()
	}
	if err != nil {
		return nil, c.tracker.Items(), err
	}

	sort.Slice(c.files, func(i, j int) bool {
		return c.files[i].Path < c.files[j].Path
	})

	options.Logger.Debug("walker.Collect finished: %d files, %d skipped", len(c.files), len(c.tracker.Items()))
	return c.files, c.tracker.Items(), nil
}

type collector struct {
	root    string
	options Options
	matcher *ignore.Matcher
	tracker *SkippedTracker
	files   []CandidateFile
}

func (c *collector) listTopLevel() error {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return fmt.Errorf("walker: failed to read directory '%s': %w", c.root, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		c.consider(filepath.Join(c.root, entry.Name()), false)
	}
	return nil
}

func (c *collector) visit(path string, d fs.DirEntry, err error) error {
	isDir := d != nil && d.IsDir()

	if err != nil {
		if path == c.root {
			return fmt.Errorf("walker: failed to read directory '%s': %w", c.root, err)
		}
		reason := ReasonSkippedWalkError
		if os.IsPermission(err) {
			reason = ReasonSkippedPermError
		}
		c.options.Logger.Warn("Skipping '%s': %v", path, err)
		c.tracker.Track(c.relative(path), reason, isDir)
		if isDir {
			return filepath.SkipDir
		}
		return nil
	}

	if path == c.root {
		return nil
	}

	if isDir {
		if c.matcher.GitIgnored(path, true) {
			c.tracker.Track(c.relative(path), ReasonIgnoredGitignore, true)
			return filepath.SkipDir
		}
		c.options.Logger.Debug("Walker: Descending into directory %q", c.relative(path))
		return nil
	}

	c.consider(path, true)
	return nil
}

// consider applies the extension, exclusion and (when filtering) ignore checks to one file
func (c *collector) consider(path string, filtering bool) {
	rel := c.relative(path)
	name := filepath.Base(path)

	if !strings.HasSuffix(strings.ToLower(name), c.options.Extension) {
		c.tracker.Track(rel, ReasonFilteredExtension, false)
		return
	}
	if _, excluded := c.options.Exclude[path]; excluded {
		c.options.Logger.Debug("Walker: Skipping bundle output %q", rel)
		c.tracker.Track(rel, ReasonSkippedOutput, false)
		return
	}

	if filtering {
		if rule, ok := c.matcher.MatchedRule(path); ok {
			c.options.Logger.Debug("Walker: Ignored %q by rule %q", rel, rule.Raw)
			c.tracker.TrackRule(rel, rule.Raw, false)
			return
		}
		if c.matcher.GitIgnored(path, false) {
			c.tracker.Track(rel, ReasonIgnoredGitignore, false)
			return
		}
	}

	c.files = append(c.files, CandidateFile{
		Path:         path,
		Dir:          filepath.Dir(path),
		Name:         name,
		RelativePath: rel,
	})
}

func (c *collector) relative(path string) string {
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		return path
	}
	return rel
}
