package availability

import "errors"

var (
	// ErrIntervalNotFound is returned when the interval does not exist or
	// belongs to another coach.
	ErrIntervalNotFound = errors.New("availability interval not found")

	// ErrInvalidInterval is returned for malformed interval bounds.
	ErrInvalidInterval = errors.New("invalid availability interval")

	// ErrIntervalInPast is returned when the interval ends before now.
	ErrIntervalInPast = errors.New("availability interval is in the past")

	// ErrIntervalOverlaps is returned when the interval overlaps an already
	// declared one.
	ErrIntervalOverlaps = errors.New("availability interval overlaps an existing one")

	// ErrHasBookings is returned when withdrawing an interval that still
	// holds confirmed bookings.
	ErrHasBookings = errors.New("availability interval has confirmed bookings")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
