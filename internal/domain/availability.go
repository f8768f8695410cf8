package domain

// SlotTime время одного слота внутри дня
type SlotTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// DayHours рабочие часы одного дня недели
// Enabled хранится указателем: nil означает "не задано в конфигурации",
// и тогда применяется дефолтная доступность дня (DefaultDayEnabled)
type DayHours struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// AvailabilityConfig конфигурация доступности салона
// Хранится одним документом под ключом AvailabilityDocumentKey
type AvailabilityConfig struct {
	// BusinessHours рабочие часы по дням недели (sunday...saturday)
	BusinessHours map[string]DayHours `json:"businessHours,omitempty"`

	// TimeSlots списки слотов по группам (weekdays/saturday/sunday)
	// или по конкретным дням недели. Порядок в списке значим и сохраняется в выдаче
	TimeSlots map[string][]SlotTime `json:"timeSlots,omitempty"`

	// FullyBookedDates даты (YYYY-MM-DD), на которые не осталось свободных слотов.
	// Производное значение: пересчитывается из бронирований, но персистится,
	// чтобы чтения не пересчитывали его каждый раз
	FullyBookedDates []string `json:"fullyBookedDates"`
}

// NewDefaultAvailabilityConfig возвращает конфигурацию с дефолтными слотами.
// Используется при первом чтении документа (seed) и как fallback в админке
func NewDefaultAvailabilityConfig() *AvailabilityConfig {
	return &AvailabilityConfig{
		BusinessHours: map[string]DayHours{},
		TimeSlots: map[string][]SlotTime{
			GroupWeekdays: append([]SlotTime(nil), DefaultWeekdaySlots...),
			GroupSaturday: append([]SlotTime(nil), DefaultSaturdaySlots...),
			GroupSunday:   append([]SlotTime(nil), DefaultSundaySlots...),
		},
		FullyBookedDates: []string{},
	}
}

// DayEnabled возвращает доступность дня недели с учетом дефолтов.
// Сконфигурированное значение учитывается, только если оно реально задано (не nil)
func (c *AvailabilityConfig) DayEnabled(dayKey string) bool {
	if c != nil && c.BusinessHours != nil {
		if hours, ok := c.BusinessHours[dayKey]; ok && hours.Enabled != nil {
			return *hours.Enabled
		}
	}
	return DefaultDayEnabled(dayKey)
}

// IsFullyBooked проверяет, помечена ли дата как полностью занятая
func (c *AvailabilityConfig) IsFullyBooked(date string) bool {
	if c == nil {
		return false
	}
	for _, d := range c.FullyBookedDates {
		if d == date {
			return true
		}
	}
	return false
}

// MarkFullyBooked добавляет дату в FullyBookedDates с дедупликацией
func (c *AvailabilityConfig) MarkFullyBooked(date string) {
	c.FullyBookedDates = DedupeDates(append(c.FullyBookedDates, date))
}

// UnmarkFullyBooked убирает дату из FullyBookedDates
func (c *AvailabilityConfig) UnmarkFullyBooked(date string) {
	result := make([]string, 0, len(c.FullyBookedDates))
	for _, d := range c.FullyBookedDates {
		if d != date {
			result = append(result, d)
		}
	}
	c.FullyBookedDates = result
}

// DedupeDates убирает дубликаты, сохраняя порядок первого вхождения
func DedupeDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	return result
}
