package reschedule_booking

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInvalidDuration is returned when the requested lesson duration is
	// not one of the offered lengths.
	ErrInvalidDuration = errors.New("reschedule_booking: invalid lesson duration")

	// ErrInvalidStartTime is returned when the new start instant is off the
	// scheduling grid.
	ErrInvalidStartTime = errors.New("reschedule_booking: start time is not grid-aligned")

	// ErrStartTimeInPast is returned when the new slot has already begun.
	ErrStartTimeInPast = errors.New("reschedule_booking: start time is in the past")

	// ErrTooFarInFuture is returned when the new slot lies beyond the booking horizon.
	ErrTooFarInFuture = errors.New("reschedule_booking: start time is too far in the future")

	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied is returned when the booking belongs to another player.
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrCannotReschedule is returned when the booking is cancelled or completed.
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrOutsideAvailability is returned when the new slot does not fit
	// inside a single declared availability interval of the coach.
	ErrOutsideAvailability = errors.New("reschedule_booking: slot is outside coach availability")

	// ErrSlotNoLongerAvailable is returned when a conflicting confirmed
	// booking holds the new slot.
	ErrSlotNoLongerAvailable = errors.New("reschedule_booking: slot is no longer available")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("reschedule_booking: internal error")
)
