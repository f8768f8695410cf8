package get_day_slots

import (
	"context"
	"errors"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
)

// UseCase use case для получения слотов записи на день
type UseCase struct {
	configStore ConfigStore
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(configStore ConfigStore, logger Logger) *UseCase {
	return &UseCase{
		configStore: configStore,
		logger:      logger,
	}
}

// Execute возвращает упорядоченный список слотов на дату.
// Некорректная дата и выключенный день дают пустой список, а не ошибку.
// Недоступность хранилища тоже не ошибка: применяется встроенная
// дефолтная конфигурация, выдача слотов не должна падать из-за хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	cfg := uc.loadConfig(ctx, req.Date)

	slots := domain.GenerateDaySlots(req.Date, cfg)

	uc.logger.Info("GetDaySlots: date=%s, slots=%d, fully_booked=%t",
		req.Date, len(slots), cfg.IsFullyBooked(req.Date))

	return &Response{
		Date:        req.Date,
		Slots:       slots,
		FullyBooked: cfg.IsFullyBooked(req.Date),
	}, nil
}

// loadConfig читает конфигурацию доступности с fallback на пустую
func (uc *UseCase) loadConfig(ctx context.Context, date string) *domain.AvailabilityConfig {
	var cfg domain.AvailabilityConfig
	err := uc.configStore.Read(ctx, domain.AvailabilityDocumentKey, &cfg)
	if err == nil {
		return &cfg
	}

	if errors.Is(err, storage.ErrDocumentNotFound) {
		uc.logger.Info("GetDaySlots: availability config not seeded yet, using defaults for date=%s", date)
	} else {
		uc.logger.Error("GetDaySlots: failed to read availability config for date=%s: %v", date, err)
	}

	return &domain.AvailabilityConfig{FullyBookedDates: []string{}}
}
