package services

import "errors"

// Client-class errors. Handlers map these to 4xx; anything else coming out
// of a service is a store failure and maps to a generic 500.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidCoupon   = errors.New("invalid coupon")
	ErrMissingEmail    = errors.New("missing email")
	ErrEmptyCheckout   = errors.New("no cart items referenced")
	ErrForeignCartItem = errors.New("cart item does not belong to the paying user")
)
