package notifyservice

// Event тип события доступности
type Event string

const (
	// EventDayFullyBooked день полностью занят
	EventDayFullyBooked Event = "day_fully_booked"

	// EventDayReopened в дне снова появились свободные слоты
	EventDayReopened Event = "day_reopened"
)

// AvailabilityNotification модель уведомления об изменении доступности дня
type AvailabilityNotification struct {
	Event Event  `json:"event"`
	Date  string `json:"date"` // YYYY-MM-DD
}

// ErrorResponse модель ошибки от NotifyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
