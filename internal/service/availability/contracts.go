package availability

import "context"

// ConfigStore интерфейс document store с конфигурацией доступности
type ConfigStore interface {
	Read(ctx context.Context, key string, out interface{}) error
	Write(ctx context.Context, key string, value interface{}) error
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
