package bookings

import (
	"context"
	"time"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/domain"
)

// BookingRepository is the booking storage used by the service.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByPlayer(ctx context.Context, playerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	ListByCoach(ctx context.Context, filter domain.CoachBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
	Complete(ctx context.Context, id int64) error
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
