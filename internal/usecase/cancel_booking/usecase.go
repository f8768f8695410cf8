package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
)

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID          int64
	CancellationReason *string
}

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo BookingRepository
	reconciler  Reconciler
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, reconciler Reconciler, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		reconciler:  reconciler,
		logger:      logger,
	}
}

// Execute выполняет use case отмены бронирования
// После успешной отмены запускает сверку флага занятости дня fire-and-forget:
// если день был помечен полностью занятым, освободившийся слот снимет пометку
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelBooking: cancelling booking id=%d", req.BookingID)

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellationReason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: repository error for booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled, status=%s",
			req.BookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := uc.bookingRepo.Cancel(ctx, req.BookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: cancelled booking id=%d, date=%s, slot=%s",
		req.BookingID, booking.BookingDate, booking.TimeSlot)

	go uc.reconciler.Execute(context.WithoutCancel(ctx), booking.BookingDate)

	return nil
}
