package availability

import "errors"

var (
	// ErrIntervalNotFound is returned when an availability interval does
	// not exist for the given coach.
	ErrIntervalNotFound = errors.New("availability.repository: interval not found")

	// ErrBuildQuery is returned when an SQL statement cannot be built.
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when an SQL statement fails to execute.
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
