// Package report writes the missing-locales result to disk.
//
// The format is one value per line with no quoting and no trailing newline.
// Locale codes never contain commas, quotes or line breaks, so the output is
// still a valid single-column CSV file.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPath is where the report is written when no other path is given.
const DefaultPath = "output.csv"

// Render joins lines with "\n".
func Render(lines []string) []byte {
	return []byte(strings.Join(lines, "\n"))
}

// Write creates or truncates path and writes the rendered lines to it. The
// file is always closed; a close failure is reported when the write itself
// succeeded.
func Write(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	if _, err := f.Write(Render(lines)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Confirm prints the line telling the user where the report went.
func Confirm(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "Missing locales saved to %s\n", path)
	return err
}
