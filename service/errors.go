package service

import "errors"

// Error taxonomy returned by the service. The handler maps each class
// to a fixed HTTP status; detail messages wrap these sentinels with %w.
var (
	// ErrValidation means a request carried malformed or missing input.
	ErrValidation = errors.New("invalid input")
	// ErrNotFound means no phone exists for the given id.
	ErrNotFound = errors.New("phone not found")
	// ErrNotInCart means the cart holds no line for the given phone.
	ErrNotInCart = errors.New("phone not found in cart")
	// ErrInsufficientStock means the requested quantity exceeds the
	// available stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrEmptyCart means checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInconsistentState means a cart line references a phone that is
	// no longer in the catalog. Cascade release on delete keeps this
	// from happening; it is reported rather than papered over.
	ErrInconsistentState = errors.New("cart references a missing phone")
)
