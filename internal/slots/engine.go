// Package slots derives bookable lesson slots from coach availability and
// existing bookings. The computation is pure: it reads its inputs, allocates
// fresh output and touches no shared state, so it is safe to call from any
// number of goroutines.
package slots

import (
	"sort"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// SlotRequest defines a slot query. Candidate start times are confined to
// [WindowStart, WindowEnd); the requested duration must fit entirely.
// GridMinutes is the snapping granularity and defaults to domain.GridMinutes
// when zero.
type SlotRequest struct {
	WindowStart     time.Time
	WindowEnd       time.Time
	DurationMinutes int
	GridMinutes     int
}

// AvailabilityInterval is a coach-declared open range [Start, End).
// Intervals may arrive unsorted, overlapping and off-grid.
type AvailabilityInterval struct {
	Start time.Time
	End   time.Time
}

// BookedInterval is the time range occupied by an existing booking.
// Only confirmed bookings block slot candidates.
type BookedInterval struct {
	Start  time.Time
	End    time.Time
	Status domain.BookingStatus
}

// BookableSlot is a derived candidate start time. It is never persisted and
// has no identity beyond its start instant.
type BookableSlot struct {
	Start time.Time
	End   time.Time
}

// ComputeBookableSlots computes the exhaustive, ascending list of valid
// lesson start times for the requested duration within the request window.
//
// Per availability interval the engine clips to the window, snaps the
// clipped start upward to the next grid boundary measured from the Unix
// epoch, then walks the grid accepting every candidate that fits inside the
// clipped interval and does not overlap a confirmed booking. Snapping from
// a fixed epoch rather than from each interval's own start guarantees that
// overlapping or adjacent coach-entered blocks yield identical candidate
// instants, which the final dedup then collapses. A slot must fit within a
// single clipped interval: adjacent blocks separated by a gap are not
// merged.
//
// Returns ErrInvalidWindow when WindowEnd <= WindowStart and
// ErrInvalidDuration when DurationMinutes is not a positive multiple of the
// grid. The result is deterministic: identical inputs produce identical,
// identically-ordered output.
func ComputeBookableSlots(
	req SlotRequest,
	availability []AvailabilityInterval,
	booked []BookedInterval,
) ([]BookableSlot, error) {
	grid := req.GridMinutes
	if grid == 0 {
		grid = domain.GridMinutes
	}

	if !req.WindowEnd.After(req.WindowStart) {
		return nil, ErrInvalidWindow
	}
	if grid <= 0 || req.DurationMinutes <= 0 || req.DurationMinutes%grid != 0 {
		return nil, ErrInvalidDuration
	}

	step := time.Duration(grid) * time.Minute
	duration := time.Duration(req.DurationMinutes) * time.Minute

	// Cancelled bookings never block; completed bookings lie behind any
	// future window and are filtered out with them.
	blocking := make([]BookedInterval, 0, len(booked))
	for _, b := range booked {
		if b.Status == domain.StatusConfirmed {
			blocking = append(blocking, b)
		}
	}

	seen := make(map[int64]struct{})
	result := make([]BookableSlot, 0)

	for _, av := range availability {
		start, end := clip(av, req.WindowStart, req.WindowEnd)
		if !end.After(start) {
			continue
		}

		for candidate := snapUpToGrid(start, step); !candidate.Add(duration).After(end); candidate = candidate.Add(step) {
			candidateEnd := candidate.Add(duration)

			if overlapsAny(blocking, candidate, candidateEnd) {
				continue
			}

			// Overlapping availability blocks produce the same grid
			// instants; keep one slot per unique start.
			key := candidate.Unix()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			result = append(result, BookableSlot{Start: candidate, End: candidateEnd})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})

	return result, nil
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// The comparison is strict: intervals that merely touch at a boundary do
// not overlap. This is the single predicate shared by slot listing and the
// commit-time re-validation.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// OverlapsBooking reports whether the candidate range [start, end)
// intersects a blocking booking.
func OverlapsBooking(b *domain.Booking, start, end time.Time) bool {
	return b.Blocks() && Overlaps(start, end, b.StartTime, b.EndTime())
}

// IsGridAligned reports whether t falls on a gridMinutes boundary measured
// from the Unix epoch.
func IsGridAligned(t time.Time, gridMinutes int) bool {
	if gridMinutes <= 0 {
		return false
	}
	stepSec := int64(gridMinutes) * 60
	return t.Nanosecond() == 0 && t.Unix()%stepSec == 0
}

// clip intersects an availability interval with [windowStart, windowEnd)
// and normalizes the bounds to UTC.
func clip(av AvailabilityInterval, windowStart, windowEnd time.Time) (time.Time, time.Time) {
	start := av.Start
	if start.Before(windowStart) {
		start = windowStart
	}
	end := av.End
	if end.After(windowEnd) {
		end = windowEnd
	}
	return start.UTC(), end.UTC()
}

// snapUpToGrid rounds t up to the next multiple of step measured from the
// Unix epoch. Instants already on the grid are returned unchanged.
func snapUpToGrid(t time.Time, step time.Duration) time.Time {
	stepSec := int64(step / time.Second)

	unix := t.Unix()
	rem := unix % stepSec
	if rem < 0 {
		rem += stepSec
	}

	if rem == 0 && t.Nanosecond() == 0 {
		return t
	}
	return time.Unix(unix-rem+stepSec, 0).UTC()
}

func overlapsAny(blocking []BookedInterval, start, end time.Time) bool {
	for _, b := range blocking {
		if Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}
	return false
}
