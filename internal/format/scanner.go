package format

import (
	"bufio"
	"io"
	"strings"
)

// maxLineSize bounds a single document line.
const maxLineSize = 1 << 20

// lineScanner yields trimmed, non-blank lines together with their line numbers.
type lineScanner struct {
	sc   *bufio.Scanner
	line int
	text string
}

func newLineScanner(r io.Reader) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	return &lineScanner{sc: sc}
}

// next advances to the next non-blank line.
func (s *lineScanner) next() bool {
	for s.sc.Scan() {
		s.line++
		s.text = strings.TrimSpace(s.sc.Text())
		if s.text != "" {
			return true
		}
	}
	return false
}

func (s *lineScanner) err() error {
	return s.sc.Err()
}

// field returns the value after prefix when the current line starts with it.
func (s *lineScanner) field(prefix string) (string, bool) {
	if !strings.HasPrefix(s.text, prefix) {
		return "", false
	}
	return strings.TrimSpace(s.text[len(prefix):]), true
}
