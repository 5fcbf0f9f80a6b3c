// Package errs contains sentinel errors shared across service and API layers
// so handlers can map failures to HTTP statuses without string matching.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested recipe does not exist.
	ErrNotFound = errors.New("recipe not found")

	// ErrUserNotFound indicates the user id did not resolve to an account.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for both unknown-email and
	// wrong-password sign-ins so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken indicates the sign-up email is already registered.
	ErrEmailTaken = errors.New("email already in use")

	// ErrAlreadyInWishlist indicates a duplicate wishlist add.
	ErrAlreadyInWishlist = errors.New("recipe already in wishlist")

	// ErrInvalidID indicates a path id that is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid id")
)
