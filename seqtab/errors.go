package seqtab

import (
	"errors"
	"fmt"
)

// Errors wrapped by TableError.
var (
	ErrEmptySequence = errors.New("empty sequence")
	ErrBadCodepoint  = errors.New("invalid code-point")
	ErrBadStatus     = errors.New("unknown status")
	ErrDuplicate     = errors.New("duplicate sequence")
	ErrNoVersion     = errors.New("missing version")
)

// TableError represents an error encountered while loading sequence data.
// Malformed data is a defect of the data asset, not a runtime condition.
type TableError struct {
	Line  int    // line number in the data file (0 if unknown)
	Entry string // offending entry, if any
	Err   error  // one of the Err… variables of this package
}

// Error implements the error interface.
func (e *TableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("emoji table, line %d: %v: %q", e.Line, e.Err, e.Entry)
	}
	if e.Entry != "" {
		return fmt.Sprintf("emoji table: %v: %q", e.Err, e.Entry)
	}
	return fmt.Sprintf("emoji table: %v", e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

func tableError(line int, entry string, err error) *TableError {
	return &TableError{Line: line, Entry: entry, Err: err}
}
