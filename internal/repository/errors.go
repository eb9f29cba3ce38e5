// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrRegistrationNotFound lets the pricing handler answer 404
// before the rebuild pipeline is entered, while ErrForbidden indicates
// that the caller does not own the registration they are operating on.
package repository

import "errors"

// ErrRegistrationNotFound is returned when a registration lookup by ID
// matches no row. Handlers should translate this into an HTTP 404
// response; the pricing engine treats it as a precondition failure it
// never computes past.
var ErrRegistrationNotFound = errors.New("registration not found")

// ErrForbidden is returned when the caller attempts an operation on a
// registration they do not own. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")
