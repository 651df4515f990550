// Package guard keeps value objects, commands and queries honest about how
// they were built: a zero value that skipped its constructor fails Validate.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as created through its constructor.
// Embed it as a private field and set it with NewConstructorGuard inside the
// constructor; a zero value struct then reports itself as not constructed.
//
// Example:
//
//	var ErrListOrdersQueryIsNotConstructed = errors.New("ListOrdersQuery must be created via NewListOrdersQuery")
//
//	type ListOrdersQuery struct {
//	    customer string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewListOrdersQuery(customer string) ListOrdersQuery {
//	    return ListOrdersQuery{customer: customer, guard: guard.NewConstructorGuard()}
//	}
//
//	func (q ListOrdersQuery) Validate() error {
//	    return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guarded object was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
