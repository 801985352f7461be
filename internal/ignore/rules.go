package ignore

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/sql-bundler/internal/logger"
)

const separators = `/\`

// SplitTokens flattens comma-separated values into trimmed, non-empty tokens
func SplitTokens(values []string) []string {
	var tokens []string
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

// ParseRules classifies ignore tokens once so matching never re-inspects them.
// Tokens that cannot be resolved are logged and dropped.
func ParseRules(values []string, log logger.Interface) []Rule {
	if log == nil {
		log = logger.Noop{}
	}

	var rules []Rule
	for _, token := range SplitTokens(values) {
		rule, err := parseRule(token)
		if err != nil {
			log.Warn("Skipping ignore rule %q: %v", token, err)
			continue
		}
		if rule.Normalized == "" {
			continue
		}
		log.Debug("ignore.ParseRules: %q parsed as %s rule", token, rule.Kind)
		rules = append(rules, rule)
	}
	return rules
}

func parseRule(token string) (Rule, error) {
	rule := Rule{
		Raw:        token,
		Normalized: strings.Trim(token, separators),
	}

	if !isPathLike(rule.Normalized) {
		rule.Kind = KindName
		rule.Normalized = strings.ToLower(rule.Normalized)
		return rule, nil
	}

	rule.Kind = KindPathPrefix
	prefix, err := resolvePrefix(token)
	if err != nil {
		return Rule{}, err
	}
	rule.Prefix = prefix
	return rule, nil
}

// isPathLike reports whether a token names a folder by path rather than by name
func isPathLike(s string) bool {
	if strings.ContainsAny(s, separators) {
		return true
	}
	return hasDriveLetter(s)
}

func hasDriveLetter(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// resolvePrefix turns a path token into a clean, absolute, lower-cased prefix.
// Leading separators are kept so absolute tokens stay absolute.
func resolvePrefix(token string) (string, error) {
	if strings.ContainsRune(token, 0) {
		return "", fmt.Errorf("ignore: path contains a NUL byte")
	}

	path := strings.TrimRight(token, separators)
	if path == "" {
		return "", fmt.Errorf("ignore: empty path")
	}
	if filepath.Separator == '/' && !hasDriveLetter(path) {
		path = strings.ReplaceAll(path, `\`, "/")
	}

	abs, err := filepath.Abs(filepath.FromSlash(path))
	if err != nil {
		return "", fmt.Errorf("ignore: failed to resolve '%s': %w", path, err)
	}
	return strings.ToLower(abs), nil
}
