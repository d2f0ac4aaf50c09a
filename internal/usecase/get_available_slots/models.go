package get_available_slots

import (
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/slots"
)

// Request is the slot query.
type Request struct {
	CoachID         int64          // coach whose slots are requested
	From            time.Time      // first day of the window (viewer-local midnight)
	Days            int            // window length in days; defaulted when 0
	DurationMinutes int            // requested lesson length
	Location        *time.Location // viewer timezone, used only for day grouping
}

// Response is the day-grouped slot list.
type Response struct {
	CoachID         int64
	DurationMinutes int
	WindowStart     time.Time
	WindowEnd       time.Time
	Days            []slots.DaySlots
}
