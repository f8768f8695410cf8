package availability

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/storage"
	"github.com/m04kA/Salon-BookingService/internal/service/availability/models"
)

// hoursPattern формат времени открытия/закрытия HH:MM
var hoursPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Service сервис для работы с конфигурацией доступности (админка)
type Service struct {
	configStore ConfigStore
	invalidator CacheInvalidator
	logger      Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(configStore ConfigStore, invalidator CacheInvalidator, logger Logger) *Service {
	return &Service{
		configStore: configStore,
		invalidator: invalidator,
		logger:      logger,
	}
}

// Get возвращает конфигурацию доступности
// При первом чтении (документа еще нет) записывает и возвращает дефолтную
// конфигурацию, чтобы дефолты админки и генератора слотов не расходились
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	var cfg domain.AvailabilityConfig
	err := s.configStore.Read(ctx, domain.AvailabilityDocumentKey, &cfg)

	if errors.Is(err, storage.ErrDocumentNotFound) {
		s.logger.Info("Get: availability config not found, seeding defaults")
		seeded := domain.NewDefaultAvailabilityConfig()
		if writeErr := s.configStore.Write(ctx, domain.AvailabilityDocumentKey, seeded); writeErr != nil {
			// Дефолты все равно отдаем: следующая запись их persist-нет
			s.logger.Error("Get: failed to seed default config: %v", writeErr)
		}
		return models.FromDomainConfig(seeded), nil
	}
	if err != nil {
		s.logger.Error("Get: failed to read availability config: %v", err)
		return nil, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(&cfg), nil
}

// Update заменяет конфигурацию доступности целиком и сбрасывает кеши
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating availability config (days=%d, slot_groups=%d, fully_booked=%d)",
		len(req.BusinessHours), len(req.TimeSlots), len(req.FullyBookedDates))

	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	cfg := req.ToDomainConfig()

	if err := s.configStore.Write(ctx, domain.AvailabilityDocumentKey, cfg); err != nil {
		s.logger.Error("Update: failed to write availability config: %v", err)
		return nil, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	if err := s.invalidator.InvalidateAvailability(ctx); err != nil {
		s.logger.Warn("Update: failed to invalidate caches: %v", err)
	}

	s.logger.Info("Update: availability config updated")
	return models.FromDomainConfig(cfg), nil
}

// validateRequest валидирует запрос обновления конфигурации
func (s *Service) validateRequest(req *models.UpdateConfigRequest) error {
	for day, hours := range req.BusinessHours {
		if !isWeekdayKey(day) {
			return fmt.Errorf("%w: unknown weekday %q in businessHours", ErrInvalidInput, day)
		}
		if hours.Open != "" && !hoursPattern.MatchString(hours.Open) {
			return fmt.Errorf("%w: invalid open time %q for %s", ErrInvalidInput, hours.Open, day)
		}
		if hours.Close != "" && !hoursPattern.MatchString(hours.Close) {
			return fmt.Errorf("%w: invalid close time %q for %s", ErrInvalidInput, hours.Close, day)
		}
	}

	for key, slots := range req.TimeSlots {
		if !isSlotGroupKey(key) {
			return fmt.Errorf("%w: unknown slot group %q in timeSlots", ErrInvalidInput, key)
		}
		for _, slot := range slots {
			if slot.Hour < 0 || slot.Hour > 23 {
				return fmt.Errorf("%w: hour %d out of range in group %q", ErrInvalidInput, slot.Hour, key)
			}
			if slot.Minute < 0 || slot.Minute > 59 {
				return fmt.Errorf("%w: minute %d out of range in group %q", ErrInvalidInput, slot.Minute, key)
			}
		}
	}

	for _, date := range req.FullyBookedDates {
		if !domain.IsValidDateString(date) {
			return fmt.Errorf("%w: invalid date %q in fullyBookedDates", ErrInvalidInput, date)
		}
	}

	return nil
}

func isWeekdayKey(key string) bool {
	for _, day := range domain.WeekdayKeys {
		if key == day {
			return true
		}
	}
	return false
}

func isSlotGroupKey(key string) bool {
	return key == domain.GroupWeekdays || isWeekdayKey(key)
}
