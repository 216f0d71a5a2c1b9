// Package guard implements a defensive construction check for commands,
// queries, and value objects. Embedding a ConstructorGuard lets a type
// detect whether it was created through its constructor function or left
// as a zero value, keeping validation rules from being bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded
// object is a zero value and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; only NewConstructorGuard produces a passing guard.
//
// Example:
//
//	type ConfirmPaymentCommand struct {
//	    parcelID kernel.UUID
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewConfirmPaymentCommand(parcelID kernel.UUID) (ConfirmPaymentCommand, error) {
//	    ...
//	    return ConfirmPaymentCommand{parcelID: parcelID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ConfirmPaymentCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the embedding object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
