package create_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDuration is returned when the requested lesson duration is
	// not one of the offered lengths.
	ErrInvalidDuration = errors.New("create_booking: invalid lesson duration")

	// ErrInvalidStartTime is returned when the start instant is off the
	// scheduling grid.
	ErrInvalidStartTime = errors.New("create_booking: start time is not grid-aligned")

	// ErrStartTimeInPast is returned when the requested slot has already begun.
	ErrStartTimeInPast = errors.New("create_booking: start time is in the past")

	// ErrTooFarInFuture is returned when the slot lies beyond the booking horizon.
	ErrTooFarInFuture = errors.New("create_booking: start time is too far in the future")

	// ErrOutsideAvailability is returned when the lesson does not fit inside
	// a single declared availability interval of the coach.
	ErrOutsideAvailability = errors.New("create_booking: slot is outside coach availability")

	// ErrSlotNoLongerAvailable is returned when a conflicting confirmed
	// booking appeared between slot display and commit.
	ErrSlotNoLongerAvailable = errors.New("create_booking: slot is no longer available")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("create_booking: internal error")
)
