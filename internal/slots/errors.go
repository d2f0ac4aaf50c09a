package slots

import "errors"

var (
	// ErrInvalidWindow is returned when the request window is empty or
	// inverted (windowEnd <= windowStart).
	ErrInvalidWindow = errors.New("slots: invalid window")

	// ErrInvalidDuration is returned when the requested duration is not a
	// positive multiple of the grid size. Durations are never coerced.
	ErrInvalidDuration = errors.New("slots: invalid duration")
)
