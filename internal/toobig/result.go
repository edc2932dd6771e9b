package toobig

import (
	"sort"
	"time"
)

// FileRecord describes a single counted text file.
type FileRecord struct {
	// Path is the file path relative to the scan root, in slash format.
	Path string `json:"path"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// Lines is the number of lines in the file.
	Lines int `json:"lines"`
	// Chars is the number of decoded characters in the file.
	Chars int `json:"chars"`
}

// Result holds the aggregate outcome of a directory scan.
type Result struct {
	// FileCount is the number of text files counted.
	FileCount int64
	// LineCount is the total number of lines across counted files.
	LineCount int64
	// CharCount is the total number of characters across counted files.
	CharCount int64
	// TotalBytes is the cumulative size of all counted files.
	TotalBytes int64
	// Skipped is the number of files dropped as binary or unreadable.
	Skipped int64
	// Files lists every counted file in traversal order.
	Files []FileRecord
	// TopFiles contains the N largest files, size descending. Equal sizes
	// keep their traversal order.
	TopFiles []FileRecord
	// TopN is the number of top results tracked.
	TopN int
	// Elapsed is the total time taken for the scan.
	Elapsed time.Duration
}

// ProgressFunc receives the directory currently being visited. A nil
// function disables progress reporting.
type ProgressFunc func(dir string)

// Options configures a directory scan.
type Options struct {
	// Path is the directory to scan.
	Path string
	// ExcludeDirs contains extra name globs to skip, applied to directory
	// and file names alike.
	ExcludeDirs []string
	// ExcludeExts contains extra extension suffixes to skip. A leading dot
	// is optional and matching is case-insensitive.
	ExcludeExts []string
	// Gitignore indicates whether to honor .gitignore at the scan root.
	Gitignore bool
	// MinSize is the minimum file size in bytes.
	MinSize int64
	// TopN is the number of top results to track.
	TopN int
	// Verbose indicates whether skipped files are reported.
	Verbose bool
	// Output represents output format (table or json).
	Output string
}

// collector aggregates records during a walk. The walk is a single
// sequential pass, so no locking is involved.
type collector struct {
	topN      int
	files     []FileRecord
	lineCount int64
	charCount int64
	byteCount int64
	skipped   int64
}

// newCollector creates a collector tracking the requested number of top files.
func newCollector(topN int) *collector {
	return &collector{
		topN:  topN,
		files: make([]FileRecord, 0),
	}
}

// add records a counted file and folds its counts into the totals.
func (c *collector) add(rec FileRecord) {
	c.files = append(c.files, rec)
	c.lineCount += int64(rec.Lines)
	c.charCount += int64(rec.Chars)
	c.byteCount += rec.Size
}

// skip notes a file that passed the exclusion filters but turned out to be
// binary or unreadable.
func (c *collector) skip() {
	c.skipped++
}

// finalize produces the final Result from the collected records.
// It extracts the top N files by size; the sort is stable so equally sized
// files keep their traversal order.
func (c *collector) finalize() *Result {
	topFiles := make([]FileRecord, len(c.files))
	copy(topFiles, c.files)

	sort.SliceStable(topFiles, func(i, j int) bool {
		return topFiles[i].Size > topFiles[j].Size
	})

	if len(topFiles) > c.topN {
		topFiles = topFiles[:c.topN]
	}

	return &Result{
		FileCount:  int64(len(c.files)),
		LineCount:  c.lineCount,
		CharCount:  c.charCount,
		TotalBytes: c.byteCount,
		Skipped:    c.skipped,
		Files:      c.files,
		TopFiles:   topFiles,
		TopN:       c.topN,
	}
}
