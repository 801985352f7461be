package ignore

import (
	"path/filepath"
	"strings"
)

// Matches reports whether the folder containing filePath is excluded by any rule
func (m *Matcher) Matches(filePath string) bool {
	_, ok := m.MatchedRule(filePath)
	return ok
}

// MatchedRule returns the first rule excluding filePath
func (m *Matcher) MatchedRule(filePath string) (Rule, bool) {
	if m == nil || len(m.rules) == 0 {
		return Rule{}, false
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		m.logger.Debug("ignore.Matches: Cannot resolve %q: %v", filePath, err)
		return Rule{}, false
	}
	dir := strings.ToLower(filepath.Dir(absPath))

	var segments []string
	for _, rule := range m.rules {
		switch rule.Kind {
		case KindPathPrefix:
			if underPrefix(dir, rule.Prefix) {
				return rule, true
			}
		case KindName:
			if segments == nil {
				segments = m.segments(dir)
			}
			for _, segment := range segments {
				if segment == rule.Normalized {
					return rule, true
				}
			}
		}
	}
	return Rule{}, false
}

// segments splits dir into folder names, relative to the root when dir lies inside it
func (m *Matcher) segments(dir string) []string {
	rel := dir
	if r, err := filepath.Rel(strings.ToLower(m.rootDir), dir); err == nil && r != ".." &&
		!strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		rel = r
	}

	parts := strings.FieldsFunc(filepath.ToSlash(rel), func(r rune) bool { return r == '/' })
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "." {
			segments = append(segments, part)
		}
	}
	return segments
}

// underPrefix is a separator-aware prefix test: /db/temp covers /db/temp/x but not /db/temporary
func underPrefix(dir, prefix string) bool {
	if dir == prefix {
		return true
	}
	if !strings.HasPrefix(dir, prefix) {
		return false
	}
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		return true
	}
	return dir[len(prefix)] == filepath.Separator
}

// GitIgnored checks path against the .gitignore files loaded with WithGitignore
func (m *Matcher) GitIgnored(path string, isDir bool) bool {
	if m == nil || m.repoIgnore == nil {
		return false
	}

	absPath, err := filepath.Abs(path)
	if err != nil || absPath == m.rootDir {
		return false
	}

	ignored := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("PANIC recovered in gitignore library for path %q: %v", path, r)
				ignored = false
			}
		}()
		if match := m.repoIgnore.Absolute(absPath, isDir); match != nil {
			ignored = match.Ignore()
		}
	}()

	if ignored {
		m.logger.Debug("ignore.GitIgnored: %q excluded by .gitignore", path)
	}
	return ignored
}
