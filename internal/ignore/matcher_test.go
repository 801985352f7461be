package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustMatcher(t *testing.T, root string, tokens ...string) *Matcher {
	t.Helper()
	m, err := New(root, ParseRules(tokens, nil))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestParseRulesClassification(t *testing.T) {
	tests := []struct {
		token      string
		kind       Kind
		normalized string
	}{
		{"temp", KindName, "temp"},
		{"Temp/", KindName, "temp"},
		{"/archive", KindName, "archive"},
		{"db/legacy", KindPathPrefix, "db/legacy"},
		{`db\legacy\`, KindPathPrefix, `db\legacy`},
		{"C:", KindPathPrefix, "C:"},
		{`C:\scripts`, KindPathPrefix, `C:\scripts`},
	}
	for _, tt := range tests {
		rules := ParseRules([]string{tt.token}, nil)
		if len(rules) != 1 {
			t.Fatalf("ParseRules(%q) returned %d rules", tt.token, len(rules))
		}
		if rules[0].Kind != tt.kind {
			t.Errorf("ParseRules(%q).Kind = %s, want %s", tt.token, rules[0].Kind, tt.kind)
		}
		if rules[0].Normalized != tt.normalized {
			t.Errorf("ParseRules(%q).Normalized = %q, want %q", tt.token, rules[0].Normalized, tt.normalized)
		}
		if rules[0].Raw != tt.token {
			t.Errorf("ParseRules(%q).Raw = %q", tt.token, rules[0].Raw)
		}
		if tt.kind == KindPathPrefix && !filepath.IsAbs(rules[0].Prefix) {
			t.Errorf("ParseRules(%q).Prefix = %q, want absolute", tt.token, rules[0].Prefix)
		}
	}
}

func TestParseRulesSplitsAndDropsEmpty(t *testing.T) {
	rules := ParseRules([]string{"temp, backup,,", " ", "/", "old"}, nil)
	var got []string
	for _, r := range rules {
		got = append(got, r.Normalized)
	}
	if strings.Join(got, "|") != "temp|backup|old" {
		t.Fatalf("unexpected rules %v", got)
	}
}

func TestParseRulesSkipsMalformedPath(t *testing.T) {
	rules := ParseRules([]string{"bad\x00/dir", "temp"}, nil)
	if len(rules) != 1 || rules[0].Normalized != "temp" {
		t.Fatalf("malformed rule not skipped: %+v", rules)
	}
}

func TestMatchesNameRule(t *testing.T) {
	root := t.TempDir()
	m := mustMatcher(t, root, "temp")

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(root, "a.sql"), false},
		{filepath.Join(root, "temp", "a.sql"), true},
		{filepath.Join(root, "TEMP", "a.sql"), true},
		{filepath.Join(root, "x", "y", "Temp", "z", "a.sql"), true},
		{filepath.Join(root, "temporary", "a.sql"), false},
		{filepath.Join(root, "x", "temp.sql"), false},
	}
	for _, tt := range tests {
		if got := m.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestNameRuleIgnoresFoldersAboveRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "temp", "project")
	m := mustMatcher(t, root, "temp")

	if m.Matches(filepath.Join(root, "schema", "a.sql")) {
		t.Fatalf("folder above the root must not trigger a name rule")
	}
	if !m.Matches(filepath.Join(root, "temp", "a.sql")) {
		t.Fatalf("folder inside the root must trigger a name rule")
	}
}

func TestMatchesPathPrefixRule(t *testing.T) {
	root := t.TempDir()
	legacy := filepath.Join(root, "db", "legacy")
	m := mustMatcher(t, root, strings.ToUpper(legacy)+string(filepath.Separator))

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(legacy, "a.sql"), true},
		{filepath.Join(legacy, "deep", "a.sql"), true},
		{filepath.Join(root, "db", "a.sql"), false},
		{filepath.Join(root, "db", "legacy2", "a.sql"), false},
		{filepath.Join(root, "other", "legacy", "a.sql"), false},
	}
	for _, tt := range tests {
		if got := m.Matches(tt.path); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestRelativePathPrefixResolvesFromWorkingDirectory(t *testing.T) {
	root := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(root); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	m := mustMatcher(t, ".", "db/legacy")
	if !m.Matches(filepath.Join(root, "db", "legacy", "a.sql")) {
		t.Fatalf("relative path rule did not match")
	}
	if m.Matches(filepath.Join(root, "legacy", "a.sql")) {
		t.Fatalf("relative path rule matched a name-only folder")
	}
}

func TestMatchesEmptyRules(t *testing.T) {
	m := mustMatcher(t, t.TempDir())
	if m.Matches("/anything/temp/a.sql") {
		t.Fatalf("empty rule set must never match")
	}

	var nilMatcher *Matcher
	if nilMatcher.Matches("/a/b.sql") {
		t.Fatalf("nil matcher must never match")
	}
}

func TestMatchedRuleReturnsFirstMatch(t *testing.T) {
	root := t.TempDir()
	m := mustMatcher(t, root, "backup", "temp")
	rule, ok := m.MatchedRule(filepath.Join(root, "temp", "backup", "a.sql"))
	if !ok || rule.Normalized != "backup" {
		t.Fatalf("MatchedRule = %+v, %v; want backup", rule, ok)
	}
}

func TestGitIgnored(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "generated"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ".gitignore"), []byte("generated/\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := New(root, nil, WithGitignore(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !m.GitIgnored(filepath.Join(root, "generated"), true) {
		t.Errorf("generated/ should be ignored")
	}
	if m.GitIgnored(filepath.Join(root, "schema"), true) {
		t.Errorf("schema/ should not be ignored")
	}

	off, _ := New(root, nil)
	if off.GitIgnored(filepath.Join(root, "generated"), true) {
		t.Errorf("gitignore must be opt-in")
	}
}
