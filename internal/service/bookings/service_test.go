package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking *domain.Booking
	list    []*domain.Booking
	getErr  error
	listErr error

	lastDate             string
	lastIncludeCancelled bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, date string, includeCancelled bool) ([]*domain.Booking, error) {
	f.lastDate = date
	f.lastIncludeCancelled = includeCancelled
	return f.list, f.listErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByID_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: &domain.Booking{
		ID:          7,
		Reference:   "3f6c23aa-9f3f-4f0e-8a44-2b7f0d1c9e11",
		ClientName:  "Анна",
		ClientEmail: "anna@example.com",
		ServiceName: "Маникюр",
		BookingDate: "2024-06-02",
		TimeSlot:    "2024-06-02T12:30:00+03:00",
		Status:      domain.StatusConfirmed,
	}}

	svc := NewService(repo, nopLogger{})
	resp, err := svc.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2024-06-02", resp.Date)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}

	svc := NewService(repo, nopLogger{})
	resp, err := svc.GetByID(context.Background(), 99)

	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Nil(t, resp)
}

func TestGetByID_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{getErr: errors.New("db down")}

	svc := NewService(repo, nopLogger{})
	_, err := svc.GetByID(context.Background(), 7)

	require.ErrorIs(t, err, ErrInternal)
}

func TestGetDayBookings_Success(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{
		{ID: 1, BookingDate: "2024-06-02", TimeSlot: "2024-06-02T12:30:00+03:00", Status: domain.StatusPending},
		{ID: 2, BookingDate: "2024-06-02", TimeSlot: "2024-06-02T15:00:00+03:00", Status: domain.StatusCancelled},
	}}

	svc := NewService(repo, nopLogger{})
	resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{
		Date:             "2024-06-02",
		IncludeCancelled: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, "2024-06-02", repo.lastDate)
	assert.True(t, repo.lastIncludeCancelled)
}

func TestGetDayBookings_EmptyDay(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})
	resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{Date: "2024-06-02"})

	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Bookings)
}

func TestGetDayBookings_InvalidDate(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})
	resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{Date: "02.06.2024"})

	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, resp)
}

func TestGetDayBookings_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{listErr: errors.New("db down")}

	svc := NewService(repo, nopLogger{})
	_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{Date: "2024-06-02"})

	require.ErrorIs(t, err, ErrInternal)
}
