package domain

import "time"

// BookingStatus represents the status of a lesson booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a booked lesson in the system.
// StartTime is an absolute UTC-anchored instant; the lesson occupies
// [StartTime, StartTime + DurationMinutes).
type Booking struct {
	ID              int64
	PlayerID        int64
	CoachID         int64
	StartTime       time.Time
	DurationMinutes int
	LessonType      string
	Status          BookingStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the instant the lesson ends.
func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// Blocks returns true if the booking occupies its time range.
// Only confirmed bookings block; cancelled bookings never do and completed
// lessons lie in the past of any bookable window.
func (b *Booking) Blocks() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot.
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// CoachBookingsFilter is the filter for listing a coach's bookings.
type CoachBookingsFilter struct {
	CoachID         int64          // required
	StartDate       *time.Time     // window start (optional)
	EndDate         *time.Time     // window end (optional)
	Status          *BookingStatus // optional status filter
	IncludeInactive bool           // include cancelled bookings
}
