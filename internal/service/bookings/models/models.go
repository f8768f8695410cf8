package models

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingResponse модель бронирования для выдачи наружу
type BookingResponse struct {
	ID                 int64      `json:"id"`
	Reference          string     `json:"reference"`
	ClientName         string     `json:"clientName"`
	ClientEmail        string     `json:"clientEmail"`
	ClientPhone        *string    `json:"clientPhone,omitempty"`
	ServiceName        string     `json:"serviceName"`
	Date               string     `json:"date"`
	TimeSlot           string     `json:"timeSlot"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// BookingListResponse модель списка бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// GetDayBookingsRequest модель запроса бронирований на дату
type GetDayBookingsRequest struct {
	Date             string
	IncludeCancelled bool
}

// FromDomainBooking конвертирует domain бронирование в модель сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		ClientName:         b.ClientName,
		ClientEmail:        b.ClientEmail,
		ClientPhone:        b.ClientPhone,
		ServiceName:        b.ServiceName,
		Date:               b.BookingDate,
		TimeSlot:           b.TimeSlot,
		Status:             string(b.Status),
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = *FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
