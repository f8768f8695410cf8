package create_booking

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, date string, includeCancelled bool) ([]*domain.Booking, error)
}

// ConfigStore интерфейс document store с конфигурацией доступности
type ConfigStore interface {
	Read(ctx context.Context, key string, out interface{}) error
}

// Reconciler интерфейс сверки флага занятости дня
// Вызывается fire-and-forget после успешного создания бронирования
type Reconciler interface {
	Execute(ctx context.Context, date string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
