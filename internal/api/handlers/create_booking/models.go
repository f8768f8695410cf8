package create_booking

import (
	"time"

	createBooking "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	ServiceName string  `json:"serviceName"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	Notes       *string `json:"notes,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	ServiceName string    `json:"serviceName"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"timeSlot"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		ClientPhone: r.ClientPhone,
		ServiceName: r.ServiceName,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		Notes:       r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:          resp.ID,
		Reference:   resp.Reference,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
		ServiceName: resp.ServiceName,
		Date:        resp.Date,
		TimeSlot:    resp.TimeSlot,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt,
	}
}
