package get_day_slots

// Request модель запроса на получение слотов дня
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со слотами дня
type Response struct {
	Date        string   // Дата, на которую запрашивались слоты
	Slots       []string // Упорядоченный список ISO-8601 слотов (+03:00)
	FullyBooked bool     // Помечен ли день как полностью занятый
}
