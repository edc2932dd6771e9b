package toobig

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupScanDir creates a temporary directory tree. Keys ending in "/" become
// directories; all other keys become files holding their value, with parent
// directories created as needed.
func setupScanDir(t *testing.T, structure map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for rel, content := range structure {
		path := filepath.Join(root, filepath.FromSlash(rel))

		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(path, 0o755))

			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

// recordPaths extracts the Path field from records, preserving order.
func recordPaths(records []FileRecord) []string {
	paths := make([]string, 0, len(records))
	for _, rec := range records {
		paths = append(paths, rec.Path)
	}

	return paths
}

func TestRunSkipsBinariesAndExcludedDirs(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"a.txt":                   "x\ny\nz\n",
		"b.bin":                   "\x00\x01\xff\xfe binary junk",
		"node_modules/ignored.js": "var x = 1;\n",
	})

	result, err := Run(context.Background(), Options{Path: root, Gitignore: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.FileCount)
	assert.Equal(t, int64(3), result.LineCount)
	assert.Equal(t, int64(6), result.CharCount)
	assert.Equal(t, int64(1), result.Skipped)
	assert.Equal(t, []string{"a.txt"}, recordPaths(result.Files))
}

func TestRunCountsEmptyFiles(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"empty.txt": "",
		"full.txt":  "one\ntwo\n",
	})

	result, err := Run(context.Background(), Options{Path: root, Gitignore: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.FileCount)
	assert.Equal(t, int64(2), result.LineCount)
	assert.Equal(t, int64(8), result.CharCount)
	assert.Zero(t, result.Skipped)

	paths := recordPaths(result.Files)
	assert.Contains(t, paths, "empty.txt")

	for _, rec := range result.Files {
		if rec.Path == "empty.txt" {
			assert.Zero(t, rec.Size)
			assert.Zero(t, rec.Lines)
			assert.Zero(t, rec.Chars)
		}
	}
}

func TestRunTopFilesOrdering(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"mid.txt":   strings.Repeat("m", 500),
		"big.txt":   strings.Repeat("b", 1500),
		"small.txt": strings.Repeat("s", 200),
	})

	result, err := Run(context.Background(), Options{Path: root, TopN: 1}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.FileCount)
	require.Len(t, result.TopFiles, 1)
	assert.Equal(t, "big.txt", result.TopFiles[0].Path)
	assert.Equal(t, int64(1500), result.TopFiles[0].Size)

	// The traversal-ordered record list is left untouched by the top-N cut.
	assert.Len(t, result.Files, 3)
}

func TestRunTopFilesStableTies(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"alpha.txt": strings.Repeat("x", 100),
		"beta.txt":  strings.Repeat("y", 100),
		"gamma.txt": strings.Repeat("z", 50),
	})

	result, err := Run(context.Background(), Options{Path: root, TopN: 2}, nil)
	require.NoError(t, err)

	// Equal sizes keep traversal (lexical) order.
	assert.Equal(t, []string{"alpha.txt", "beta.txt"}, recordPaths(result.TopFiles))
}

func TestRunGitignore(t *testing.T) {
	structure := map[string]string{
		".gitignore": "*.log\n",
		"a.txt":      "hello\n",
		"debug.log":  "noise\n",
	}

	t.Run("enabled", func(t *testing.T) {
		root := setupScanDir(t, structure)

		result, err := Run(context.Background(), Options{Path: root, Gitignore: true}, nil)
		require.NoError(t, err)

		assert.Equal(t, []string{"a.txt"}, recordPaths(result.Files))
	})

	t.Run("disabled", func(t *testing.T) {
		root := setupScanDir(t, structure)

		result, err := Run(context.Background(), Options{Path: root, Gitignore: false}, nil)
		require.NoError(t, err)

		// The .gitignore file itself stays excluded by the default name set.
		assert.Equal(t, []string{"a.txt", "debug.log"}, recordPaths(result.Files))
	})
}

func TestRunGitignoreTrailingSlashPrunes(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		".gitignore":     "generated/\n",
		"a.txt":          "hello\n",
		"generated/g.go": "package gen\n",
	})

	result, err := Run(context.Background(), Options{Path: root, Gitignore: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt"}, recordPaths(result.Files))
}

func TestRunExcludeDirsIsHardPrune(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"src/main.go":             "package main\n",
		"fixtures/deep/data.txt":  "data\n",
		"fixtures/shallow.txt":    "data\n",
		"other/fixtures/more.txt": "data\n",
	})

	result, err := Run(context.Background(), Options{Path: root, ExcludeDirs: []string{"fixtures"}}, nil)
	require.NoError(t, err)

	for _, rec := range result.Files {
		for _, segment := range strings.Split(rec.Path, "/") {
			assert.NotEqual(t, "fixtures", segment, "pruned directory leaked into %s", rec.Path)
		}
	}

	assert.Equal(t, []string{"src/main.go"}, recordPaths(result.Files))
}

func TestRunExcludeExts(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"keep.txt":    "keep\n",
		"scratch.tmp": "drop\n",
		"NOTES.TMP":   "drop\n",
	})

	result, err := Run(context.Background(), Options{Path: root, ExcludeExts: []string{"tmp"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.txt"}, recordPaths(result.Files))
}

func TestRunDefaultExtensionExclusions(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"app.js":     "var x;\n",
		"app.min.js": "var x;\n",
		"logo.PNG":   "\x89PNG\r\n\x1a\nrest",
	})

	result, err := Run(context.Background(), Options{Path: root}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"app.js"}, recordPaths(result.Files))
	// Extension exclusion fires before classification, so nothing counts
	// as a skipped binary.
	assert.Zero(t, result.Skipped)
}

func TestRunMinSize(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"tiny.txt": "abc\n",
		"big.txt":  strings.Repeat("line of text\n", 200),
	})

	result, err := Run(context.Background(), Options{Path: root, MinSize: 1000}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"big.txt"}, recordPaths(result.Files))
}

func TestRunTotalsMatchRecords(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"a.txt":     "one\ntwo\nthree\n",
		"sub/b.txt": "four\n",
		"sub/c.txt": "five\nsix",
	})

	result, err := Run(context.Background(), Options{Path: root}, nil)
	require.NoError(t, err)

	var lines, chars, bytes int64
	for _, rec := range result.Files {
		lines += int64(rec.Lines)
		chars += int64(rec.Chars)
		bytes += rec.Size
	}

	assert.Equal(t, int64(len(result.Files)), result.FileCount)
	assert.Equal(t, lines, result.LineCount)
	assert.Equal(t, chars, result.CharCount)
	assert.Equal(t, bytes, result.TotalBytes)
}

func TestRunIdempotent(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"a.txt":     "alpha\n",
		"b.txt":     "beta\n",
		"sub/c.txt": "gamma\n",
	})

	first, err := Run(context.Background(), Options{Path: root, Gitignore: true}, nil)
	require.NoError(t, err)

	second, err := Run(context.Background(), Options{Path: root, Gitignore: true}, nil)
	require.NoError(t, err)

	assert.Equal(t, first.FileCount, second.FileCount)
	assert.Equal(t, first.LineCount, second.LineCount)
	assert.Equal(t, first.CharCount, second.CharCount)
	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, first.TopFiles, second.TopFiles)
}

func TestRunProgressReportsDirectories(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"a.txt":                   "text\n",
		"sub/b.txt":               "text\n",
		"node_modules/ignored.js": "var x;\n",
	})

	var visited []string

	_, err := Run(context.Background(), Options{Path: root}, func(dir string) {
		visited = append(visited, dir)
	})
	require.NoError(t, err)

	assert.Contains(t, visited, root)
	assert.Contains(t, visited, filepath.Join(root, "sub"))
	assert.NotContains(t, visited, filepath.Join(root, "node_modules"))
}

func TestRunCancelled(t *testing.T) {
	root := setupScanDir(t, map[string]string{"a.txt": "text\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, Options{Path: root}, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, result)
}

func TestRunInvalidTarget(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := Run(context.Background(), Options{Path: filepath.Join(t.TempDir(), "nope")}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "accessing path")
	})

	t.Run("not a directory", func(t *testing.T) {
		root := setupScanDir(t, map[string]string{"file.txt": "text\n"})

		_, err := Run(context.Background(), Options{Path: filepath.Join(root, "file.txt")}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})
}

func TestRunSkipsUnreadableFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}

	if os.Geteuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}

	root := setupScanDir(t, map[string]string{
		"open.txt":   "readable\n",
		"sealed.txt": "unreadable\n",
	})

	require.NoError(t, os.Chmod(filepath.Join(root, "sealed.txt"), 0o000))

	result, err := Run(context.Background(), Options{Path: root}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"open.txt"}, recordPaths(result.Files))
	assert.Equal(t, int64(1), result.Skipped)
}

func TestRunDefaultTopN(t *testing.T) {
	structure := make(map[string]string)
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		structure[name+".txt"] = strings.Repeat(name, 10) + "\n"
	}

	root := setupScanDir(t, structure)

	result, err := Run(context.Background(), Options{Path: root}, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultTopN, result.TopN)
	assert.Len(t, result.TopFiles, DefaultTopN)
	assert.Len(t, result.Files, 7)
}

func TestCollectorFinalize(t *testing.T) {
	c := newCollector(2)

	c.add(FileRecord{Path: "first.txt", Size: 10, Lines: 1, Chars: 10})
	c.add(FileRecord{Path: "second.txt", Size: 30, Lines: 3, Chars: 30})
	c.add(FileRecord{Path: "third.txt", Size: 30, Lines: 2, Chars: 28})
	c.skip()

	result := c.finalize()

	assert.Equal(t, int64(3), result.FileCount)
	assert.Equal(t, int64(6), result.LineCount)
	assert.Equal(t, int64(68), result.CharCount)
	assert.Equal(t, int64(70), result.TotalBytes)
	assert.Equal(t, int64(1), result.Skipped)
	assert.Equal(t, []string{"second.txt", "third.txt"}, recordPaths(result.TopFiles))
	assert.Equal(t, []string{"first.txt", "second.txt", "third.txt"}, recordPaths(result.Files))
}

func TestRunTraversalOrderIsLexical(t *testing.T) {
	root := setupScanDir(t, map[string]string{
		"zebra.txt": "z\n",
		"apple.txt": "a\n",
		"mango.txt": "m\n",
	})

	result, err := Run(context.Background(), Options{Path: root}, nil)
	require.NoError(t, err)

	paths := recordPaths(result.Files)
	assert.True(t, sort.StringsAreSorted(paths), "expected lexical traversal, got %v", paths)
}
