package errs

import (
	"errors"
	"fmt"
)

// ErrInvariantIsBroken is the sentinel wrapped by every InvariantIsBrokenError.
var ErrInvariantIsBroken = errors.New("invariant is broken")

// InvariantIsBrokenError reports persisted state that contradicts a domain
// invariant, such as a workflow instance without task instances or a cascade
// that finds no pending task to activate. It signals corrupt template data or a
// defect in earlier processing, never a user mistake.
type InvariantIsBrokenError struct {
	ParamName string
	Cause     error
}

// NewInvariantIsBrokenError creates an InvariantIsBrokenError for the named invariant.
func NewInvariantIsBrokenError(paramName string) *InvariantIsBrokenError {
	return &InvariantIsBrokenError{ParamName: paramName}
}

// NewInvariantIsBrokenErrorWithCause creates an InvariantIsBrokenError with a cause.
func NewInvariantIsBrokenErrorWithCause(paramName string, cause error) *InvariantIsBrokenError {
	return &InvariantIsBrokenError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *InvariantIsBrokenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvariantIsBroken, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvariantIsBroken, e.ParamName)
}

func (e *InvariantIsBrokenError) Unwrap() error {
	return ErrInvariantIsBroken
}
