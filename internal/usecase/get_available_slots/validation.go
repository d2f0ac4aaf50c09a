package get_available_slots

import (
	"fmt"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// validateRequest checks request fields that do not depend on the clock.
func validateRequest(req *Request) error {
	if req.CoachID <= 0 {
		return fmt.Errorf("%w: coachID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() {
		return fmt.Errorf("%w: from date is required", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > domain.MaxWindowDays {
		return fmt.Errorf("%w: days must be in [0, %d]", ErrInvalidInput, domain.MaxWindowDays)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: duration %d is not offered", ErrInvalidDuration, req.DurationMinutes)
	}

	return nil
}
