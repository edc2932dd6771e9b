// Package ignore implements the glob matching behind exclusion rules and
// best-effort .gitignore support.
//
// Matching follows fnmatch semantics: '*' matches any run of characters,
// path separators included, so one engine serves bare name patterns and
// slash-separated path patterns alike. Negation and nested .gitignore
// files are out of scope.
package ignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/danwakefield/fnmatch"
)

// Match reports whether name matches the shell glob pattern.
func Match(pattern, name string) bool {
	return fnmatch.Match(pattern, name, 0)
}

// MatchAny reports whether name matches any of the patterns, returning the
// first pattern that matched so callers can name the rule that fired.
func MatchAny(patterns []string, name string) (string, bool) {
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return pattern, true
		}
	}

	return "", false
}

// Patterns is an ordered list of gitignore-style globs. Order is kept for
// reproducibility only; any match excludes.
type Patterns []string

// Match reports whether the slash-separated relative path matches any of
// the patterns. A pattern with a trailing slash is also tested with the
// slash removed, so a directory entry like "build/" matches the path
// "build".
func (p Patterns) Match(rel string) bool {
	for _, pattern := range p {
		if Match(pattern, rel) {
			return true
		}

		if trimmed, ok := strings.CutSuffix(pattern, "/"); ok && Match(trimmed, rel) {
			return true
		}
	}

	return false
}

// Load reads gitignore-style patterns from path. A missing file yields no
// patterns and no error; any other read failure is returned to the caller.
// Blank lines, "#" comments and "!" negations are dropped, and a leading
// "/" anchor is stripped so root-anchored entries still match.
func Load(path string) (Patterns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var patterns Patterns

	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		line = strings.TrimPrefix(filepath.ToSlash(line), "/")

		patterns = append(patterns, line)
	}

	return patterns, nil
}
