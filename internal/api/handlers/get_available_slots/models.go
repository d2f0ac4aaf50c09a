package get_available_slots

import (
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/slots"
	getAvailableSlots "github.com/ethanriley28/baseball-lessons-app-sub000/internal/usecase/get_available_slots"
)

// SlotResponse is one bookable slot.
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DayResponse is the slots of one viewer-local day.
type DayResponse struct {
	Day   string         `json:"day"` // "2025-06-10"
	Slots []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse is the HTTP response model.
type AvailableSlotsResponse struct {
	CoachID         int64         `json:"coachId"`
	DurationMinutes int           `json:"durationMinutes"`
	WindowStart     time.Time     `json:"windowStart"`
	WindowEnd       time.Time     `json:"windowEnd"`
	Days            []DayResponse `json:"days"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		CoachID:         resp.CoachID,
		DurationMinutes: resp.DurationMinutes,
		WindowStart:     resp.WindowStart,
		WindowEnd:       resp.WindowEnd,
		Days:            make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		out.Days = append(out.Days, toDayResponse(day))
	}

	return out
}

func toDayResponse(day slots.DaySlots) DayResponse {
	out := DayResponse{
		Day:   day.Day,
		Slots: make([]SlotResponse, 0, len(day.Slots)),
	}
	for _, s := range day.Slots {
		out.Slots = append(out.Slots, SlotResponse{Start: s.Start, End: s.End})
	}
	return out
}
