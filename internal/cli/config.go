package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// fileConfig holds the settings that can be supplied through a TOML
// configuration file. Pointer fields distinguish "absent" from zero values.
type fileConfig struct {
	// Top overrides the default number of files to display.
	Top *int `toml:"top"`

	// Gitignore toggles honoring .gitignore at the scan root.
	Gitignore *bool `toml:"gitignore"`

	// MinSize is a human-readable minimum file size, such as "1KB".
	MinSize string `toml:"min_size"`

	// ExcludeDirs lists extra directory or file name globs to skip.
	ExcludeDirs []string `toml:"exclude_dirs"`

	// ExcludeExts lists extra file extensions to skip.
	ExcludeExts []string `toml:"exclude_exts"`
}

// loadConfig reads the configuration file at path, falling back to
// ~/.config/toobig/config.toml when path is empty. A missing file at the
// default location is not an error.
func loadConfig(path string, stderr io.Writer) (fileConfig, error) {
	var cfg fileConfig

	defaulted := path == ""

	if defaulted {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}

		path = filepath.Join(home, ".config", "toobig", "config.toml")
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if defaulted && errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}

		return fileConfig{}, fmt.Errorf("loading configuration %q: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		fmt.Fprintf(stderr, "warning: unrecognized configuration keys in %q: %v\n", path, undecoded)
	}

	return cfg, nil
}
