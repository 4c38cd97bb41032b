package errs

import (
	"errors"
	"fmt"
)

// ErrStateIsInvalid is the sentinel wrapped by every StateIsInvalidError.
var ErrStateIsInvalid = errors.New("state is invalid")

// StateIsInvalidError reports an operation that is well formed but not legal
// for the current status of the entity it targets. The cause should name the
// entity and the status that caused the rejection.
//
// Example:
//
//	errs.NewStateIsInvalidErrorWithCause(
//	    "order status",
//	    fmt.Errorf("order is %s - cannot update task instance %s", status, id),
//	)
type StateIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewStateIsInvalidError creates a StateIsInvalidError for the named state.
func NewStateIsInvalidError(paramName string) *StateIsInvalidError {
	return &StateIsInvalidError{ParamName: paramName}
}

// NewStateIsInvalidErrorWithCause creates a StateIsInvalidError with a cause.
func NewStateIsInvalidErrorWithCause(paramName string, cause error) *StateIsInvalidError {
	return &StateIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *StateIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrStateIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrStateIsInvalid, e.ParamName)
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}
