package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/slots"
)

// validateRequest checks request fields that do not depend on the clock.
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.PlayerID <= 0 {
		return fmt.Errorf("%w: playerID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 && !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration %d is not offered", ErrInvalidDuration, req.DurationMinutes)
	}

	if !slots.IsGridAligned(req.StartTime, domain.GridMinutes) {
		return fmt.Errorf("%w: %s is off the %d-minute grid",
			ErrInvalidStartTime, req.StartTime.UTC().Format(time.RFC3339), domain.GridMinutes)
	}

	return nil
}

// validateStartTime checks the new start against the current time and the
// booking horizon.
func validateStartTime(start, now time.Time) error {
	if !start.After(now) {
		return fmt.Errorf("%w: %s", ErrStartTimeInPast, start.UTC().Format(time.RFC3339))
	}

	horizon := now.AddDate(0, 0, domain.MaxWindowDays)
	if start.After(horizon) {
		return fmt.Errorf("%w: bookings open at most %d days ahead", ErrTooFarInFuture, domain.MaxWindowDays)
	}

	return nil
}

// coveredBySingleInterval reports whether [start, end) lies entirely within
// one availability interval.
func coveredBySingleInterval(intervals []*domain.AvailabilityInterval, start, end time.Time) bool {
	for _, iv := range intervals {
		if !start.Before(iv.StartTime) && !end.After(iv.EndTime) {
			return true
		}
	}
	return false
}
