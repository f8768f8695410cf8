package get_availability_config

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/service/availability/models"
)

type AvailabilityService interface {
	Get(ctx context.Context) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
