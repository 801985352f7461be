// Package summary handles display of bundle results
package summary

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bethropolis/sql-bundler/internal/walker"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
	Success(format string, args ...interface{})
}

// BundleResult describes a completed bundle
type BundleResult struct {
	FileCount    int
	IgnoreRules  []string // rule tokens as supplied
	FlatMode     bool
	OutputPath   string
	BytesWritten int64
	Duration     time.Duration
}

// DisplayResults reports a successful bundle
func DisplayResults(logger Logger, result BundleResult) {
	logger.Success("Combined %d %s into: %s", result.FileCount, plural(result.FileCount, "file", "files"), result.OutputPath)
	if len(result.IgnoreRules) > 0 && !result.FlatMode {
		logger.Info("Ignored folders: %s", strings.Join(result.IgnoreRules, ", "))
	}
	if result.FlatMode {
		logger.Info("Flat mode: only top-level files were bundled.")
	}
	logger.Info("Wrote %d bytes in %v.", result.BytesWritten, result.Duration.Round(time.Millisecond))
}

// DisplaySkippedItems lists skipped paths grouped by reason. Reasons and the
// paths under each are sorted; rule skips name the rule that matched.
func DisplaySkippedItems(logger Logger, items []walker.SkippedItem, output io.Writer) {
	if len(items) == 0 {
		logger.Info("No items were skipped.")
		return
	}
	logger.Info("Skipped %d %s:", len(items), plural(len(items), "item", "items"))

	groups := make(map[walker.SkippedReason][]walker.SkippedItem)
	for _, item := range items {
		groups[item.Reason] = append(groups[item.Reason], item)
	}
	reasons := make([]walker.SkippedReason, 0, len(groups))
	for reason := range groups {
		reasons = append(reasons, reason)
	}
	sort.Slice(reasons, func(i, j int) bool { return reasons[i] < reasons[j] })

	for _, reason := range reasons {
		group := groups[reason]
		sort.Slice(group, func(i, j int) bool { return group[i].Path < group[j].Path })
		fmt.Fprintf(output, "%s (%d)\n", reason, len(group))
		for _, item := range group {
			path := filepath.ToSlash(item.Path)
			if item.IsDir {
				path += "/"
			}
			if item.Detail != "" {
				fmt.Fprintf(output, "  %s  <- %s\n", path, item.Detail)
				continue
			}
			fmt.Fprintf(output, "  %s\n", path)
		}
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
