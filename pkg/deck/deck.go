// Package deck assembles the final NEC2 input file from a comment block and a
// compiled card stack, and writes it to disk.
package deck

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Deck is a complete NEC2 input: the CM/CE comment block followed by the
// geometry and control cards.
type Deck struct {
	Comments string
	Cards    string
}

// String renders the deck: trimmed comments, a newline, trimmed cards and a
// trailing newline.
func (d Deck) String() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(d.Comments))
	b.WriteByte('\n')
	b.WriteString(strings.TrimSpace(d.Cards))
	b.WriteByte('\n')
	return b.String()
}

// WriteTo writes the rendered deck to w.
func (d Deck) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}

// WriteFile writes the deck to path, replacing any existing file. The file is
// closed on every path; a close failure is reported if the write succeeded.
func WriteFile(path string, d Deck) (n int64, err error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	n, err = d.WriteTo(f)
	if err != nil {
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}

// Echo copies the file at path to w so a freshly written deck can be
// inspected by eye.
func Echo(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("failed to echo %s: %w", path, err)
	}
	return nil
}
