package reconcile_fully_booked

import (
	"context"
	"errors"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
)

// UseCase use case сверки флага "день полностью занят" с реальными бронированиями
//
// Флаг fullyBookedDates - производный кеш, а не источник истины:
// источник истины - живой набор бронирований. Сверка запускается на каждом
// создании и отмене бронирования и обязана быть идемпотентной: без смены
// статуса не происходит ни записи, ни сброса кешей, ни вызова хуков
type UseCase struct {
	configStore ConfigStore
	bookings    BookingSource
	invalidator CacheInvalidator
	callbacks   Callbacks
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// callbacks может быть пустым: оба хука опциональны
func NewUseCase(
	configStore ConfigStore,
	bookings BookingSource,
	invalidator CacheInvalidator,
	callbacks Callbacks,
	logger Logger,
) *UseCase {
	return &UseCase{
		configStore: configStore,
		bookings:    bookings,
		invalidator: invalidator,
		callbacks:   callbacks,
		logger:      logger,
	}
}

// Execute сверяет флаг занятости дня с бронированиями
//
// Никогда не возвращает ошибку вызывающему: сбой сверки не должен
// ломать операцию бронирования, которая её запустила. Все ошибки
// логируются и проглатываются, ретраев нет - устаревший флаг
// исправится на следующем событии бронирования по этой дате
func (uc *UseCase) Execute(ctx context.Context, date string) {
	// 1. Конфигурация: при нечитаемом хранилище работаем с пустой
	cfg := uc.loadConfig(ctx, date)

	// 2. Все слоты дня. Пустой список (день закрыт либо дата некорректна) -
	// выходим без побочных эффектов: закрытый день не бывает "полностью занятым"
	allSlots := domain.GenerateDaySlots(date, cfg)
	if len(allSlots) == 0 {
		return
	}

	// 3. Бронирования на дату (отмененные слот не занимают)
	bookings, err := uc.bookings.GetByDate(ctx, date, true)
	if err != nil {
		uc.logger.Error("ReconcileFullyBooked: failed to load bookings for date=%s: %v", date, err)
		return
	}

	bookedKeys := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		if !b.OccupiesSlot() || b.TimeSlot == "" {
			continue
		}
		if key := domain.NormalizeSlotKey(b.TimeSlot); key != "" {
			bookedKeys[key] = struct{}{}
		}
	}

	// 4. Заняты ли все слоты
	allFilled := true
	for _, slot := range allSlots {
		if _, ok := bookedKeys[domain.NormalizeSlotKey(slot)]; !ok {
			allFilled = false
			break
		}
	}

	// 5. Применяем только переход статуса
	wasMarked := cfg.IsFullyBooked(date)

	switch {
	case allFilled && !wasMarked:
		cfg.MarkFullyBooked(date)
		if !uc.persist(ctx, cfg, date) {
			return
		}
		uc.logger.Info("ReconcileFullyBooked: date=%s marked fully booked (%d/%d slots)",
			date, len(bookedKeys), len(allSlots))
		if uc.callbacks.OnDayFullyBooked != nil {
			uc.callbacks.OnDayFullyBooked(ctx, date)
		}

	case !allFilled && wasMarked:
		cfg.UnmarkFullyBooked(date)
		if !uc.persist(ctx, cfg, date) {
			return
		}
		uc.logger.Info("ReconcileFullyBooked: date=%s reopened", date)
		if uc.callbacks.OnDayReopened != nil {
			uc.callbacks.OnDayReopened(ctx, date)
		}

	default:
		// Статус не изменился - ни записи, ни сброса кешей, ни хуков
	}
}

// persist записывает конфигурацию и сбрасывает кеши доступности
// Возвращает false, если запись не удалась (кеши тогда не трогаем)
func (uc *UseCase) persist(ctx context.Context, cfg *domain.AvailabilityConfig, date string) bool {
	if err := uc.configStore.Write(ctx, domain.AvailabilityDocumentKey, cfg); err != nil {
		uc.logger.Error("ReconcileFullyBooked: failed to persist config for date=%s: %v", date, err)
		return false
	}

	if err := uc.invalidator.InvalidateAvailability(ctx); err != nil {
		// Запись прошла, кеш не сбросился: флаг корректен, выдача догонит на TTL
		uc.logger.Warn("ReconcileFullyBooked: failed to invalidate caches for date=%s: %v", date, err)
	}

	return true
}

// loadConfig читает конфигурацию с fallback на пустую при любой ошибке чтения
func (uc *UseCase) loadConfig(ctx context.Context, date string) *domain.AvailabilityConfig {
	var cfg domain.AvailabilityConfig
	err := uc.configStore.Read(ctx, domain.AvailabilityDocumentKey, &cfg)
	if err == nil {
		return &cfg
	}

	if !errors.Is(err, storage.ErrDocumentNotFound) {
		uc.logger.Error("ReconcileFullyBooked: failed to read config for date=%s: %v", date, err)
	}

	return &domain.AvailabilityConfig{FullyBookedDates: []string{}}
}
