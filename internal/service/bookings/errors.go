package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the requester is neither the player
	// nor the coach of the booking.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the booking is not cancellable.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrCannotComplete is returned when the booking cannot be marked completed.
	ErrCannotComplete = errors.New("booking cannot be completed")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
