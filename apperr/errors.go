// Package apperr defines the sentinel errors shared across the store, auth
// and handler layers. Callers match them with errors.Is.
package apperr

import "errors"

var (
	// Registration / content uniqueness conditions.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateName  = errors.New("cafe name already taken")

	// Authentication conditions.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("admin access required")

	// Lookup / input conditions.
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)
