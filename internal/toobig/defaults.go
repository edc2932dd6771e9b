package toobig

// DefaultTopN is the number of largest files reported by default.
const DefaultTopN = 5

// DefaultExcludeDirs lists name globs excluded by default. The entries are
// matched against directory and file names alike, so lockfiles and VCS
// metadata files sit alongside dependency and build directories.
//
//nolint:gochecknoglobals // Config constant
var DefaultExcludeDirs = []string{
	// Version control
	".git",
	".hg",
	".svn",
	".bzr",
	".gitignore",
	".gitattributes",
	".gitmodules",

	// Dependencies
	"node_modules",
	"bower_components",
	"vendor",
	"third_party",

	// Python environments and caches
	"__pycache__",
	".venv",
	"venv",
	".tox",
	".mypy_cache",
	".pytest_cache",
	".ruff_cache",
	"*.egg-info",

	// Build output
	"dist",
	"build",
	"target",
	"out",
	"bin",
	"obj",
	".next",
	".nuxt",
	"coverage",

	// Tooling state
	".idea",
	".vscode",
	".cache",
	".gradle",
	".terraform",
	".DS_Store",

	// Lockfiles
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"go.sum",
	"Cargo.lock",
	"poetry.lock",
	"uv.lock",
	"composer.lock",
	"Gemfile.lock",
}

// DefaultExcludeExts lists file extensions excluded by default, largely
// compiled artifacts and binary media. Compound suffixes such as ".min.js"
// are matched against the end of the file name.
//
//nolint:gochecknoglobals // Config constant
var DefaultExcludeExts = []string{
	// Images
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".ico", ".svg", ".webp", ".tiff",

	// Audio and video
	".mp3", ".mp4", ".avi", ".mov", ".mkv", ".webm", ".wav", ".flac", ".ogg",

	// Fonts
	".ttf", ".otf", ".woff", ".woff2", ".eot",

	// Archives
	".zip", ".tar", ".gz", ".bz2", ".xz", ".7z", ".rar",

	// Compiled artifacts
	".exe", ".dll", ".so", ".dylib", ".a", ".o", ".class", ".jar", ".war",
	".pyc", ".pyo", ".wasm",

	// Documents and data blobs
	".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx",
	".db", ".sqlite", ".sqlite3",

	// Generated web assets
	".min.js", ".min.css", ".map",
}
