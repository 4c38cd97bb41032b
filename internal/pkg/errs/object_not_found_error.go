package errs

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound is the sentinel wrapped by every ObjectNotFoundError.
var ErrObjectNotFound = errors.New("object not found")

// ObjectNotFoundError reports that a referenced entity does not exist.
// ParamName names the kind of object that was looked up (e.g. "order")
// and ID carries the identifier that failed to resolve.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError that keeps the
// original error for diagnostics.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
