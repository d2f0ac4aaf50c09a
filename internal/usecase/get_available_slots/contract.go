package get_available_slots

import (
	"context"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// AvailabilityRepository is the availability store seen by this use case.
type AvailabilityRepository interface {
	// ListInWindow fetches the coach's open intervals intersecting [from, to).
	ListInWindow(ctx context.Context, coachID int64, from, to time.Time) ([]*domain.AvailabilityInterval, error)
}

// BookingRepository is the booking store seen by this use case.
type BookingRepository interface {
	// ListBlockingInWindow fetches confirmed bookings intersecting [from, to).
	ListBlockingInWindow(ctx context.Context, coachID int64, from, to time.Time) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface this package needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
