package reconcile_fully_booked

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// ConfigStore интерфейс document store с конфигурацией доступности
type ConfigStore interface {
	Read(ctx context.Context, key string, out interface{}) error
	Write(ctx context.Context, key string, value interface{}) error
}

// BookingSource интерфейс источника бронирований
// Бронирования принадлежат отдельной подсистеме: здесь они только читаются
type BookingSource interface {
	GetByDate(ctx context.Context, date string, includeCancelled bool) ([]*domain.Booking, error)
}

// CacheInvalidator интерфейс сброса кешей доступности
type CacheInvalidator interface {
	InvalidateAvailability(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Callbacks опциональные хуки на смену статуса занятости дня
// Вызываются после успешной записи конфигурации и сброса кешей
type Callbacks struct {
	OnDayFullyBooked func(ctx context.Context, date string)
	OnDayReopened    func(ctx context.Context, date string)
}
