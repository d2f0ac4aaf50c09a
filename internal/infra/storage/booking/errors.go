package booking

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist.
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotTaken is returned when an insert or update violates the
	// no-overlap exclusion constraint on confirmed bookings.
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery is returned when an SQL statement cannot be built.
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when an SQL statement fails to execute.
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
