package get_day_slots

import (
	getDaySlots "github.com/m04kA/Salon-BookingService/internal/usecase/get_day_slots"
)

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	FullyBooked bool     `json:"fullyBooked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDaySlots.Response) *DaySlotsResponse {
	return &DaySlotsResponse{
		Date:        resp.Date,
		Slots:       resp.Slots,
		FullyBooked: resp.FullyBooked,
	}
}
