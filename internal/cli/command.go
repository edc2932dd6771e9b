package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/toobig/internal/integration"
	"github.com/idelchi/toobig/internal/toobig"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the root command against os.Args.
func (c CLI) Execute() error {
	return c.newRootCmd(os.Stdout, os.Stderr).Execute()
}

// newRootCmd builds the root command writing to the given streams, so tests
// can capture output.
//
//nolint:funlen // Flag wiring is long but flat.
func (c CLI) newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		options     toobig.Options
		minSizeStr  string
		configPath  string
		noGitignore bool
		initConfig  bool
	)

	allowedOutputs := []string{"table", "json"}

	root := &cobra.Command{
		Use:   "toobig [path]",
		Short: "Report the largest text files in a directory tree",
		Long: heredoc.Doc(`
			toobig walks a directory tree, counts lines and characters in every text
			file it finds, and reports the largest files together with aggregate
			totals.

			Files are classified as text by probing their first kilobyte for valid
			UTF-8; everything else is skipped. Common dependency, build-artifact and
			binary-media paths are excluded by default, and patterns from a
			.gitignore at the scan root are honored unless --no-gitignore is given.

			Defaults can be kept in a configuration file; run 'toobig --init' to
			print a starter file for ~/.config/toobig/config.toml.
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initConfig {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering starter configuration: %w", err)
				}

				fmt.Fprintln(stdout, rendered)

				return nil
			}

			cfg, err := loadConfig(configPath, stderr)
			if err != nil {
				if configPath != "" {
					return err
				}

				fmt.Fprintf(stderr, "warning: %v\n", err)
			}

			if !slices.Contains(allowedOutputs, strings.ToLower(options.Output)) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			// Configuration file values apply only where the corresponding
			// flag was left at its default.
			if !cmd.Flags().Changed("top") && cfg.Top != nil {
				options.TopN = *cfg.Top
			}

			if options.TopN <= 0 {
				return errors.New("top must be positive")
			}

			options.Gitignore = !noGitignore
			if !cmd.Flags().Changed("no-gitignore") && cfg.Gitignore != nil {
				options.Gitignore = *cfg.Gitignore
			}

			if !cmd.Flags().Changed("min-size") && cfg.MinSize != "" {
				minSizeStr = cfg.MinSize
			}

			options.ExcludeDirs = append(cfg.ExcludeDirs, options.ExcludeDirs...)
			options.ExcludeExts = append(cfg.ExcludeExts, options.ExcludeExts...)

			size, err := humanize.ParseBytes(minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe

			if len(args) == 0 {
				options.Path = "."
			} else {
				options.Path = args[0]
			}

			return run(options, stdout, stderr)
		},
	}

	flags := root.Flags()
	flags.SortFlags = false

	flags.IntVarP(&options.TopN, "top", "t", toobig.DefaultTopN, "Number of largest files to display")
	flags.StringSliceVar(&options.ExcludeDirs, "exclude-dirs", nil,
		"Additional directory or file name globs to skip (e.g. testdata,*.gen.go)")
	flags.StringSliceVar(&options.ExcludeExts, "exclude-exts", nil,
		"Additional file extensions to skip; a leading dot is optional (e.g. log,.tmp)")
	flags.BoolVar(&noGitignore, "no-gitignore", false, "Do not honor .gitignore at the scan root")
	flags.StringVar(&minSizeStr, "min-size", "0KB", "Minimum file size to report (e.g. 1KB)")
	flags.StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	flags.StringVarP(&configPath, "config", "c", "",
		"Path to a configuration file (default ~/.config/toobig/config.toml)")
	flags.BoolVarP(&initConfig, "init", "i", false, "Print a starter configuration file and exit")
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "Report every skipped binary or unreadable file")

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.HiddenDefaultCmd = true

	return root
}
