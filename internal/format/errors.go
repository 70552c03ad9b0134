// Package format reads inventory and order documents and writes pick-ship manifests
// in the line-oriented text format used by the warehouse.
package format

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every ParseError.
var ErrMalformed = errors.New("malformed document")

// ParseError describes the first line of a document that did not match what the
// parser expected at that point.
type ParseError struct {
	// Source is "inventory" or "order"
	Source string
	// Line is 1-based; 0 means the error was detected at end of input
	Line     int
	Expected string
	Got      string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: unexpected end of input, expected %s", e.Source, e.Expected)
	}
	return fmt.Sprintf("%s line %d: expected %s, got %q", e.Source, e.Line, e.Expected, e.Got)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformed
}
