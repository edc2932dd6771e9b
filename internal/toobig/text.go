package toobig

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// classifyProbeSize bounds how much of a file the text classifier reads.
const classifyProbeSize = 1024

// isTextFile reports whether the file at path looks like UTF-8 text,
// probing at most classifyProbeSize bytes. Unreadable files classify as
// binary rather than erroring. The check is a heuristic: a binary file
// whose probe happens to be valid UTF-8 passes.
func isTextFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	probe := make([]byte, classifyProbeSize)

	n, err := io.ReadFull(file, probe)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false
	}

	probe = probe[:n]
	if n == classifyProbeSize {
		probe = trimPartialRune(probe)
	}

	return utf8.Valid(probe)
}

// trimPartialRune drops a trailing multi-byte sequence that the probe
// boundary cut short, so a rune split at the boundary does not fail
// validation.
func trimPartialRune(probe []byte) []byte {
	for i := len(probe) - 1; i >= 0 && i >= len(probe)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(probe[i]) {
			continue
		}

		if runeLen(probe[i]) > len(probe)-i {
			return probe[:i]
		}

		break
	}

	return probe
}

// runeLen returns the encoded length implied by a UTF-8 leading byte, or
// -1 if the byte cannot start a sequence.
func runeLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}

	return -1
}

// countFile streams the file at path and returns its line and character
// counts. Malformed bytes decode to the Unicode replacement character
// instead of aborting the count. Every decoded rune counts as one
// character, '\n' closes a line, and a final unterminated nonempty line
// counts as one line. Any read error yields (0, 0).
func countFile(path string) (lines, chars int) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0
	}
	defer file.Close()

	reader := bufio.NewReader(transform.NewReader(file, unicode.UTF8.NewDecoder()))

	pending := false

	for {
		r, _, err := reader.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if pending {
					lines++
				}

				return lines, chars
			}

			return 0, 0
		}

		chars++

		if r == '\n' {
			lines++

			pending = false
		} else {
			pending = true
		}
	}
}
