package get_player_bookings

import (
	"context"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/bookings/models"
)

type BookingService interface {
	GetPlayerBookings(ctx context.Context, req *models.GetPlayerBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
