package create_booking

import (
	"context"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// BookingRepository is the booking storage used by the use case.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListBlockingInWindow(ctx context.Context, coachID int64, from, to time.Time) ([]*domain.Booking, error)
}

// AvailabilityRepository is the coach availability storage.
type AvailabilityRepository interface {
	ListInWindow(ctx context.Context, coachID int64, from, to time.Time) ([]*domain.AvailabilityInterval, error)
}

// TransactionManager runs the conflict check and the insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface of the use case.
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
