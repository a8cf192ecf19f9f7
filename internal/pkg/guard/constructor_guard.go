// Package guard marks values that were produced by their constructor so that
// zero-value commands, queries and value objects are rejected before use.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be built through their
// NewX function. The zero value is "not constructed".
//
//	type AddToCartCommand struct {
//	    productID kernel.UUID
//	    quantity  int
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c AddToCartCommand) Validate() error {
//	    return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
