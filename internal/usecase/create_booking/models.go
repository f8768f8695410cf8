package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	ClientName  string  // Имя клиента
	ClientEmail string  // Email клиента
	ClientPhone *string // Телефон клиента (опционально)
	ServiceName string  // Название услуги
	Date        string  // Дата бронирования YYYY-MM-DD
	TimeSlot    string  // Слот ISO-8601, например 2024-06-02T12:30:00+03:00
	Notes       *string // Комментарий клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	Reference   string // Публичный UUID бронирования
	ClientName  string
	ClientEmail string
	ServiceName string
	Date        string
	TimeSlot    string
	Status      string
	CreatedAt   time.Time
}
