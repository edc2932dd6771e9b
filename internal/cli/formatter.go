package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/toobig/internal/toobig"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2

	// kb and mb are the display units for per-file sizes.
	kb = 1 << 10
	mb = 1 << 20
)

// report is the JSON view of a scan result.
type report struct {
	// TotalFiles is the number of text files counted.
	TotalFiles int64 `json:"total_files"`
	// TotalLines is the total number of lines across counted files.
	TotalLines int64 `json:"total_lines"`
	// TotalChars is the total number of characters across counted files.
	TotalChars int64 `json:"total_chars"`
	// TotalBytes is the cumulative size of all counted files.
	TotalBytes int64 `json:"total_bytes"`
	// Skipped is the number of files dropped as binary or unreadable.
	Skipped int64 `json:"skipped"`
	// TopFiles contains the largest files, size descending.
	TopFiles []toobig.FileRecord `json:"top_files"`
	// Elapsed is the total scan duration.
	Elapsed time.Duration `json:"elapsed"`
}

// PrintJSON outputs the scan result in JSON format.
func PrintJSON(result *toobig.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(report{
		TotalFiles: result.FileCount,
		TotalLines: result.LineCount,
		TotalChars: result.CharCount,
		TotalBytes: result.TotalBytes,
		Skipped:    result.Skipped,
		TopFiles:   result.TopFiles,
		Elapsed:    result.Elapsed,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the scan result in human-readable table format.
func PrintTable(result *toobig.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "Stats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", result.FileCount)
	fmt.Fprintf(w, "Total lines:\t%d\n", result.LineCount)
	fmt.Fprintf(w, "Total characters:\t%d\n", result.CharCount)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(result.TotalBytes)), result.TotalBytes) //nolint:gosec // Bytes is always positive

	if result.Skipped > 0 {
		fmt.Fprintf(w, "Skipped:\t%d\n", result.Skipped)
	}

	if len(result.TopFiles) == 0 {
		fmt.Fprintln(w, "\nNo text files found.")
	} else {
		fmt.Fprintln(w, "\nTop files:\t\t\t")

		for i, f := range result.TopFiles {
			fmt.Fprintf(w, "  %d) '%s'\t%s\t%d lines\t%d chars\n",
				i+1, f.Path, sizeString(f.Size), f.Lines, f.Chars)
		}
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}

// sizeString renders a byte count in KB below one megabyte and in MB from
// there up, always with two decimals.
func sizeString(size int64) string {
	if size < mb {
		return fmt.Sprintf("%.2f KB", float64(size)/kb)
	}

	return fmt.Sprintf("%.2f MB", float64(size)/mb)
}
