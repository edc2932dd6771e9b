package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/idelchi/toobig/internal/toobig"
)

// run executes a scan with the given options, rendering the report to
// stdout and any diagnostics to stderr. An interrupt signal aborts the
// scan and discards partial results.
func run(options toobig.Options, stdout, stderr io.Writer) error {
	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Verbose &&
		isTerminal(stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Simple progress callback that prints directly to stderr
	var progress toobig.ProgressFunc

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		progress = func(dir string) {
			fmt.Fprintf(stderr, "\r\033[2KScanning %s\r", dir)
		}
	}

	result, err := toobig.Run(ctx, options, progress)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("scan interrupted")
		}

		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(result, stdout)
	case "table":
		return PrintTable(result, stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)

	return ok && isatty.IsTerminal(file.Fd())
}
