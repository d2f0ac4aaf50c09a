package slots

import (
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// DaySlots groups bookable slots under one calendar day of the viewer.
type DaySlots struct {
	// Day is the viewer-local date in YYYY-MM-DD form.
	Day   string
	Slots []BookableSlot
}

// GroupByDay buckets an ascending slot list by the viewer's local calendar
// day. The location must be the viewer's timezone, passed in explicitly:
// bucketing by a server-assumed zone misassigns slots near midnight. The
// slot instants themselves stay absolute; only the bucket keys are local.
func GroupByDay(slots []BookableSlot, loc *time.Location) []DaySlots {
	if loc == nil {
		loc = time.UTC
	}

	days := make([]DaySlots, 0)

	for _, slot := range slots {
		day := slot.Start.In(loc).Format(domain.DateFormat)

		// Input is ascending by start, so local days arrive contiguously.
		if n := len(days); n > 0 && days[n-1].Day == day {
			days[n-1].Slots = append(days[n-1].Slots, slot)
			continue
		}
		days = append(days, DaySlots{Day: day, Slots: []BookableSlot{slot}})
	}

	return days
}
