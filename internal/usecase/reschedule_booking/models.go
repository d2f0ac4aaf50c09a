package reschedule_booking

import "time"

// Request is the reschedule request.
type Request struct {
	BookingID       int64     // booking being moved
	PlayerID        int64     // requesting player, must own the booking
	StartTime       time.Time // new lesson start, grid-aligned
	DurationMinutes int       // new lesson length; 0 keeps the current one
}

// Response is the updated booking.
type Response struct {
	ID              int64
	PlayerID        int64
	CoachID         int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	LessonType      string
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
