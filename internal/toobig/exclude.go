package toobig

import (
	"slices"
	"strings"

	"github.com/idelchi/toobig/internal/ignore"
)

// exclusions holds the effective filter set for one scan: name globs shared
// by directories and files, lowercase extension suffixes, and the gitignore
// patterns loaded from the scan root. Built once per run, then read-only.
type exclusions struct {
	names   []string
	exts    []string
	ignored ignore.Patterns
}

// newExclusions merges the built-in defaults with user-supplied additions.
func newExclusions(extraDirs, extraExts []string, ignored ignore.Patterns) exclusions {
	return exclusions{
		names:   append(slices.Clone(DefaultExcludeDirs), extraDirs...),
		exts:    normalizeExts(append(slices.Clone(DefaultExcludeExts), extraExts...)),
		ignored: ignored,
	}
}

// name reports whether a directory or file basename matches an exclusion
// glob, returning the pattern that fired.
func (e exclusions) name(base string) (string, bool) {
	return ignore.MatchAny(e.names, base)
}

// ext reports whether the file name ends in an excluded extension suffix.
// Matching is case-insensitive and covers compound suffixes like ".min.js".
func (e exclusions) ext(base string) (string, bool) {
	lower := strings.ToLower(base)

	for _, suffix := range e.exts {
		if strings.HasSuffix(lower, suffix) {
			return suffix, true
		}
	}

	return "", false
}

// path reports whether the slash-separated relative path matches a
// gitignore pattern.
func (e exclusions) path(rel string) bool {
	return e.ignored.Match(rel)
}

// normalizeExts lowercases extensions, prefixes them with a dot when the
// dot is missing, and drops empties and duplicates. Order is preserved.
func normalizeExts(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	seen := make(map[string]struct{}, len(exts))

	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		if _, ok := seen[ext]; ok {
			continue
		}

		seen[ext] = struct{}{}

		normalized = append(normalized, ext)
	}

	return normalized
}
