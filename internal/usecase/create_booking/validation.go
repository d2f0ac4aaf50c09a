package create_booking

import (
	"fmt"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/slots"
)

// validateRequest checks request fields that do not depend on the clock.
func validateRequest(req *Request) error {
	if req.PlayerID <= 0 {
		return fmt.Errorf("%w: playerID must be positive", ErrInvalidInput)
	}

	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration %d is not offered", ErrInvalidDuration, req.DurationMinutes)
	}

	if !slots.IsGridAligned(req.StartTime, domain.GridMinutes) {
		return fmt.Errorf("%w: %s is off the %d-minute grid",
			ErrInvalidStartTime, req.StartTime.UTC().Format(time.RFC3339), domain.GridMinutes)
	}

	if req.LessonType == "" {
		return fmt.Errorf("%w: lessonType is required", ErrInvalidInput)
	}

	if len(req.LessonType) > domain.MaxLessonTypeLength {
		return fmt.Errorf("%w: lessonType exceeds %d characters", ErrInvalidInput, domain.MaxLessonTypeLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartTime checks the start instant against the current time and
// the booking horizon.
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
// one availability interval. Adjacent intervals are never merged.
func coveredBySingleInterval(intervals []*domain.AvailabilityInterval, start, end time.Time) bool {
	for _, iv := range intervals {
		if !start.Before(iv.StartTime) && !end.After(iv.EndTime) {
			return true
		}
	}
	return false
}
