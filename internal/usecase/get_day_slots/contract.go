package get_day_slots

import "context"

// ConfigStore интерфейс document store с конфигурацией доступности
type ConfigStore interface {
	// Read читает документ по ключу и декодирует его в out
	Read(ctx context.Context, key string, out interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
