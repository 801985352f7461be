package summary

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/sql-bundler/internal/walker"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Info(format string, args ...interface{}) {
	r.lines = append(r.lines, "INFO "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Success(format string, args ...interface{}) {
	r.lines = append(r.lines, "OK "+fmt.Sprintf(format, args...))
}

func TestDisplayResults(t *testing.T) {
	tests := []struct {
		name   string
		result BundleResult
		want   []string
	}{
		{
			name:   "ignore rules",
			result: BundleResult{FileCount: 2, IgnoreRules: []string{"temp", "db/old"}, OutputPath: "out/all.sql", BytesWritten: 10, Duration: time.Second},
			want: []string{
				"OK Combined 2 files into: out/all.sql",
				"INFO Ignored folders: temp, db/old",
				"INFO Wrote 10 bytes in 1s.",
			},
		},
		{
			name:   "flat hides ignore rules",
			result: BundleResult{FileCount: 1, IgnoreRules: []string{"temp"}, FlatMode: true, OutputPath: "all.sql"},
			want: []string{
				"OK Combined 1 file into: all.sql",
				"INFO Flat mode: only top-level files were bundled.",
				"INFO Wrote 0 bytes in 0s.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &recordingLogger{}
			DisplayResults(log, tt.result)
			if strings.Join(log.lines, "\n") != strings.Join(tt.want, "\n") {
				t.Fatalf("got:\n%s\nwant:\n%s", strings.Join(log.lines, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestDisplaySkippedItemsGroupedByReason(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	DisplaySkippedItems(log, []walker.SkippedItem{
		{Path: "z.txt", Reason: walker.ReasonFilteredExtension},
		{Path: "temp/b.sql", Reason: walker.ReasonIgnoredRule, Detail: "temp"},
		{Path: "generated", Reason: walker.ReasonIgnoredGitignore, IsDir: true},
		{Path: "a.txt", Reason: walker.ReasonFilteredExtension},
		{Path: "old scripts/a.sql", Reason: walker.ReasonIgnoredRule, Detail: "old scripts"},
	}, &out)

	want := "Filtered (Extension Mismatch) (2)\n" +
		"  a.txt\n" +
		"  z.txt\n" +
		"Ignored (Gitignore) (1)\n" +
		"  generated/\n" +
		"Ignored (Ignore Rule) (2)\n" +
		"  old scripts/a.sql  <- old scripts\n" +
		"  temp/b.sql  <- temp\n"
	if out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
	if len(log.lines) != 1 || log.lines[0] != "INFO Skipped 5 items:" {
		t.Fatalf("header = %q", log.lines)
	}
}

func TestDisplaySkippedItemsEmpty(t *testing.T) {
	log := &recordingLogger{}
	var out bytes.Buffer
	DisplaySkippedItems(log, nil, &out)
	if out.Len() != 0 || len(log.lines) != 1 || log.lines[0] != "INFO No items were skipped." {
		t.Fatalf("unexpected output %q / %q", out.String(), log.lines)
	}
}
