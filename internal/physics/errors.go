package physics

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvariantError reports a broken engine invariant, such as a reflection
// without exactly one moving side. The engine panics with it; callers are
// not expected to recover.
type InvariantError struct {
	err error
}

func invariantf(format string, args ...any) *InvariantError {
	return &InvariantError{err: errors.Errorf(format, args...)}
}

// Error implements error.
func (e *InvariantError) Error() string {
	return "physics: invariant violated: " + e.err.Error()
}

// Unwrap returns the underlying error carrying the stack trace.
func (e *InvariantError) Unwrap() error {
	return e.err
}

// Format prints the stack trace with %+v.
func (e *InvariantError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "physics: invariant violated: %+v", e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}
