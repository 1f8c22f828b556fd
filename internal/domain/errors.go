package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity or record was not found.
	ErrNotFound = errors.New("not found")
	// ErrNotLoggedIn rejects operations that require an authenticated user.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrEmptyCart rejects checkout with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)
