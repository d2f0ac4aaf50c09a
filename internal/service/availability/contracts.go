package availability

import (
	"context"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// AvailabilityRepository is the availability storage used by the service.
type AvailabilityRepository interface {
	Create(ctx context.Context, interval *domain.AvailabilityInterval) (*domain.AvailabilityInterval, error)
	GetByID(ctx context.Context, coachID, intervalID int64) (*domain.AvailabilityInterval, error)
	ListInWindow(ctx context.Context, coachID int64, from, to time.Time) ([]*domain.AvailabilityInterval, error)
	Delete(ctx context.Context, coachID, intervalID int64) error
}

// BookingRepository supplies the confirmed bookings inside an interval.
type BookingRepository interface {
	ListBlockingInWindow(ctx context.Context, coachID int64, from, to time.Time) ([]*domain.Booking, error)
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
