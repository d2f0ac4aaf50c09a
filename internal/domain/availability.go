package domain

import "time"

// AvailabilityInterval represents a coach-declared open time range during
// which lessons may be booked. Intervals are entered ad hoc: they are not
// guaranteed to be sorted, non-overlapping or grid-aligned.
type AvailabilityInterval struct {
	ID        int64
	CoachID   int64
	StartTime time.Time
	EndTime   time.Time
	CreatedAt time.Time
}
