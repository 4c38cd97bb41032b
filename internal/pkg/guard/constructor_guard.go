// Package guard holds small helpers that protect value objects and commands
// from being used as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its designated constructor.
// Embed it as a field, set it with NewConstructorGuard inside the constructor and
// call Validate before the struct is used:
//
//	var ErrStartCommandIsNotConstructed = errors.New("StartCommand must be created via NewStartCommand")
//
//	type StartCommand struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (c StartCommand) Validate() error {
//	    return c.guard.Validate(ErrStartCommandIsNotConstructed)
//	}
//
// The zero value reports "not constructed". The guard is immutable and safe to
// copy or share between goroutines.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For the zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
