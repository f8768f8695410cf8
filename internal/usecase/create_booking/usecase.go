package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	configStore ConfigStore
	reconciler  Reconciler
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configStore ConfigStore,
	reconciler Reconciler,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		configStore: configStore,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
// После успешного создания запускает сверку флага занятости дня fire-and-forget:
// её сбой не влияет на результат бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, service=%s, date=%s, slot=%s",
		req.ClientEmail, req.ServiceName, req.Date, req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Конфигурация доступности (недоступное хранилище = дефолтное расписание)
	cfg := uc.loadConfig(ctx)

	// 3. Слоты дня: пустой список означает закрытый день
	allSlots := domain.GenerateDaySlots(req.Date, cfg)
	if len(allSlots) == 0 {
		uc.logger.Warn("CreateBooking: salon is closed on %s", req.Date)
		return nil, ErrDayClosed
	}

	// 4. Запрошенное время должно входить в расписание дня
	// Сравниваем нормализованными ключами, чтобы не зависеть от формата записи
	requestedKey := domain.NormalizeSlotKey(req.TimeSlot)
	if requestedKey == "" {
		uc.logger.Warn("CreateBooking: unparseable time slot %q", req.TimeSlot)
		return nil, fmt.Errorf("%w: timeSlot is malformed", ErrInvalidInput)
	}

	var canonicalSlot string
	for _, slot := range allSlots {
		if domain.NormalizeSlotKey(slot) == requestedKey {
			canonicalSlot = slot
			break
		}
	}
	if canonicalSlot == "" {
		uc.logger.Warn("CreateBooking: slot %s is not in schedule for date=%s", req.TimeSlot, req.Date)
		return nil, ErrSlotNotInSchedule
	}

	// 5. Слот не должен быть занят активным бронированием
	existing, err := uc.bookingRepo.GetByDate(ctx, req.Date, false)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}
	for _, b := range existing {
		if domain.NormalizeSlotKey(b.TimeSlot) == requestedKey {
			uc.logger.Warn("CreateBooking: slot %s already booked for date=%s", canonicalSlot, req.Date)
			return nil, ErrSlotAlreadyBooked
		}
	}

	// 6. Создаем бронирование
	// Слот сохраняем в каноническом виде из расписания, а не как прислал клиент
	booking := &domain.Booking{
		Reference:   uuid.NewString(),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ServiceName: req.ServiceName,
		BookingDate: req.Date,
		TimeSlot:    canonicalSlot,
		Status:      domain.StatusPending,
		Notes:       req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking id=%d, reference=%s, date=%s, slot=%s",
		created.ID, created.Reference, created.BookingDate, created.TimeSlot)

	// 7. Сверяем флаг занятости дня, не дожидаясь результата
	go uc.reconciler.Execute(context.WithoutCancel(ctx), req.Date)

	return &Response{
		ID:          created.ID,
		Reference:   created.Reference,
		ClientName:  created.ClientName,
		ClientEmail: created.ClientEmail,
		ServiceName: created.ServiceName,
		Date:        created.BookingDate,
		TimeSlot:    created.TimeSlot,
		Status:      string(created.Status),
		CreatedAt:   created.CreatedAt,
	}, nil
}

// loadConfig читает конфигурацию доступности с fallback на пустую
func (uc *UseCase) loadConfig(ctx context.Context) *domain.AvailabilityConfig {
	var cfg domain.AvailabilityConfig
	err := uc.configStore.Read(ctx, domain.AvailabilityDocumentKey, &cfg)
	if err == nil {
		return &cfg
	}

	if !errors.Is(err, storage.ErrDocumentNotFound) {
		uc.logger.Error("CreateBooking: failed to read availability config: %v", err)
	}

	return &domain.AvailabilityConfig{FullyBookedDates: []string{}}
}
