package create_availability

import (
	"context"

	"github.com/ethanriley28/baseball-lessons-app-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	Declare(ctx context.Context, req *models.DeclareIntervalRequest) (*models.IntervalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
