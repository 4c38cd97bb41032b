// Package errs provides standardized error types for the workshop service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsOutOfRangeError: For when a value lies outside its bounds
//   - StateIsInvalidError: For operations that are illegal in the current status
//   - InvariantIsBrokenError: For persisted state that contradicts a domain invariant
//
// The HTTP adapter classifies errors by their sentinel: ErrObjectNotFound maps
// to 404, the value and state errors to 400, anything else (including
// ErrInvariantIsBroken) to 500.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
