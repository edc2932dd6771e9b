package toobig

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/idelchi/toobig/internal/ignore"
)

// logger provides conditional diagnostic output on a single stream.
type logger struct {
	verbose bool
	out     io.Writer
}

// debugf prints skip notices when verbose mode is enabled.
func (l logger) debugf(format string, args ...any) {
	if l.verbose {
		fmt.Fprintf(l.out, format+"\n", args...)
	}
}

// warnf prints a warning regardless of verbosity.
func (l logger) warnf(format string, args ...any) {
	fmt.Fprintf(l.out, "warning: "+format+"\n", args...)
}

// Run scans the directory tree at opt.Path and returns aggregated results.
// It prunes directories matching the exclusion globs or the root .gitignore,
// skips excluded and binary files, and counts lines and characters in the
// rest. Files are visited sequentially in lexical order, so results are
// deterministic for a fixed tree.
//
// The walk can be cancelled via ctx. Each directory visited is reported to
// progress if provided.
//
//nolint:gocognit,funlen // Walk callback and setup share too much state to split.
func Run(ctx context.Context, opt Options, progress ProgressFunc) (*Result, error) {
	log := logger{verbose: opt.Verbose, out: os.Stderr}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs.
	opt.Path = filepath.Clean(opt.Path)

	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	if opt.TopN <= 0 {
		opt.TopN = DefaultTopN
	}

	var ignored ignore.Patterns

	if opt.Gitignore {
		var err error

		ignored, err = ignore.Load(filepath.Join(opt.Path, ".gitignore"))
		if err != nil {
			log.warnf("unreadable .gitignore, continuing without it: %v", err)
		}
	}

	excl := newExclusions(opt.ExcludeDirs, opt.ExcludeExts, ignored)
	collector := newCollector(opt.TopN)

	start := time.Now()

	//nolint:varnamelen // d is standard for DirEntry
	walkErr := filepath.WalkDir(opt.Path, func(path string, d fs.DirEntry, err error) error {
		// Check cancellation before doing any work on the entry.
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		if err != nil {
			log.debugf("skipping %s: %v", path, err)

			return nil
		}

		rel, err := filepath.Rel(opt.Path, path)
		if err != nil {
			log.debugf("skipping %s: %v", path, err)

			return nil
		}

		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			// Never prune the scan root itself.
			if rel != "." {
				if pattern, ok := excl.name(d.Name()); ok {
					log.debugf("pruning directory %s (pattern %s)", rel, pattern)

					return filepath.SkipDir
				}

				if excl.path(rel) {
					log.debugf("pruning directory %s (.gitignore)", rel)

					return filepath.SkipDir
				}
			}

			if progress != nil {
				progress(path)
			}

			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if pattern, ok := excl.name(d.Name()); ok {
			log.debugf("skipping %s (pattern %s)", rel, pattern)

			return nil
		}

		if suffix, ok := excl.ext(d.Name()); ok {
			log.debugf("skipping %s (extension %s)", rel, suffix)

			return nil
		}

		if excl.path(rel) {
			log.debugf("skipping %s (.gitignore)", rel)

			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			// The file disappeared between listing and stat.
			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if fileInfo.Size() < opt.MinSize {
			return nil
		}

		if !isTextFile(path) {
			collector.skip()
			log.debugf("skipping binary file %s", rel)

			return nil
		}

		lines, chars := countFile(path)
		if lines == 0 && chars == 0 && fileInfo.Size() > 0 {
			// Counting a nonzero-size file as empty means the read failed
			// or the classifier was fooled.
			collector.skip()
			log.debugf("skipping unreadable file %s", rel)

			return nil
		}

		collector.add(FileRecord{
			Path:  rel,
			Size:  fileInfo.Size(),
			Lines: lines,
			Chars: chars,
		})

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	result := collector.finalize()

	result.Elapsed = time.Since(start)

	return result, nil
}
