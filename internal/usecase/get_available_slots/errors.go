package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDuration is returned when the requested lesson duration is
	// not one of the offered lengths. Durations are never coerced.
	ErrInvalidDuration = errors.New("get_available_slots: invalid lesson duration")

	// ErrInvalidWindow is returned when the requested window is empty,
	// inverted or entirely in the past.
	ErrInvalidWindow = errors.New("get_available_slots: invalid query window")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
