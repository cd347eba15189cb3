// Package guard implements the constructor guard used by commands, queries and aggregates
// to reject zero values that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is invalid. Only
// NewConstructorGuard produces a guard that passes validation.
//
// Example:
//
//	type ApplyDiscountCommand struct {
//	    reason string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c ApplyDiscountCommand) Validate() error {
//	    return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the guard
// is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
