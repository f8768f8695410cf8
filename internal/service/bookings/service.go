package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований (админка)
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetDayBookings получает бронирования на дату
// includeCancelled включает в выдачу отмененные бронирования
func (s *Service) GetDayBookings(ctx context.Context, req *models.GetDayBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetDayBookings: fetching bookings for date=%s, include_cancelled=%t",
		req.Date, req.IncludeCancelled)

	if !domain.IsValidDateString(req.Date) {
		s.logger.Warn("GetDayBookings: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, req.Date, req.IncludeCancelled)
	if err != nil {
		s.logger.Error("GetDayBookings: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GetDayBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayBookings: fetched %d bookings for date=%s", len(bookings), req.Date)
	return models.FromDomainBookingList(bookings), nil
}
