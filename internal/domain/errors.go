package domain

import "errors"

var (
	ErrTurfNotFound    = errors.New("turf not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	// ErrUnauthorized means the caller does not own the turf a booking belongs to.
	ErrUnauthorized = errors.New("not authorized for this turf")
	ErrValidation   = errors.New("validation error")
	// ErrStore wraps read/write failures of the underlying record store.
	ErrStore = errors.New("store unavailable")
)
