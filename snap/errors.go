package snap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput classifies every unparseable edge-list line.
	// It is recorded per line and never returned from Load.
	ErrMalformedInput = errors.New("snap: malformed input")

	// ErrTooFewFields indicates a data line with fewer than two fields.
	ErrTooFewFields = fmt.Errorf("%w: fewer than two fields", ErrMalformedInput)

	// ErrNotInteger indicates a node field that is not a base-10 integer.
	ErrNotInteger = fmt.Errorf("%w: non-integer node", ErrMalformedInput)
)

// LineError describes one skipped line.
type LineError struct {
	// Line is the 1-based line number.
	Line int
	// Text is the trimmed line content.
	Text string
	// Err is ErrTooFewFields or ErrNotInteger, possibly wrapping a strconv error.
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("snap: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
