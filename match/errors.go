package match

import (
	"errors"
	"fmt"
)

// Errors wrapped by BuildError.
var (
	ErrEmptyTable    = errors.New("no emoji sequences")
	ErrEmptySequence = errors.New("sequence without code-points")
	ErrUnknownForm   = errors.New("unknown matcher form")
)

// BuildError is returned if a matcher cannot be built from a table.
// A builder never silently produces a matcher which matches nothing.
type BuildError struct {
	Form  Form
	Index int   // index of the offending sequence, -1 if not applicable
	Err   error // one of the Err… variables of this package
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("building %s matcher: sequence #%d: %v", e.Form, e.Index, e.Err)
	}
	return fmt.Sprintf("building %s matcher: %v", e.Form, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
