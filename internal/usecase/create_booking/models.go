package create_booking

import "time"

// Request is the booking commit request.
type Request struct {
	PlayerID        int64     // player making the booking
	CoachID         int64     // coach being booked
	StartTime       time.Time // absolute lesson start, grid-aligned
	DurationMinutes int       // lesson length
	LessonType      string    // e.g. "hitting", "pitching"
	Notes           *string   // optional player notes
}

// Response is the created booking.
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
