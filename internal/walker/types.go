// Package walker collects the files that make up a bundle
package walker

// CandidateFile is a file selected for bundling
type CandidateFile struct {
	Path         string // absolute path
	Dir          string // containing directory
	Name         string // base name, used in banners
	RelativePath string // path relative to the collection root
}

// ProcessFunc receives each collected file with its content
type ProcessFunc func(file CandidateFile, content []byte) error

// SkippedReason clarifies why a file/directory was not collected.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Ignore Rule)"
	ReasonIgnoredGitignore  SkippedReason = "Ignored (Gitignore)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedOutput     SkippedReason = "Skipped (Bundle Output File)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
	Detail string        `json:"detail,omitempty"` // matched ignore rule, when any
}

// SkippedTracker records skipped items in the order they were seen
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// TrackRule records a path excluded by an ignore rule along with the rule token
func (st *SkippedTracker) TrackRule(path, rule string, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: ReasonIgnoredRule, IsDir: isDir, Detail: rule})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
