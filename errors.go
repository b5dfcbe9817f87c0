package paramselect

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrUnsupported      = errors.New("paramselect: no acceptable option offered")
	ErrUnknownParameter = errors.New("paramselect: unknown parameter")
	ErrInvalidConfig    = errors.New("paramselect: invalid config")
)

// ResolveError wraps an error with resolution context.
type ResolveError struct {
	Err          error
	ResolutionID string
	Parameter    string
	Offered      []string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("paramselect: resolution=%s parameter=%s offered=%v: %v",
		e.ResolutionID, e.Parameter, e.Offered, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// IsUnsupported reports whether err means a required parameter had no
// acceptable option.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}
