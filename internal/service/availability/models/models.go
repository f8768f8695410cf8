package models

import "github.com/m04kA/Salon-BookingService/internal/domain"

// DayHours модель рабочих часов одного дня недели
type DayHours struct {
	Open    string `json:"open"`
	Close   string `json:"close"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// SlotTime модель времени слота
type SlotTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ConfigResponse модель конфигурации доступности для админки
type ConfigResponse struct {
	BusinessHours    map[string]DayHours   `json:"businessHours"`
	TimeSlots        map[string][]SlotTime `json:"timeSlots"`
	FullyBookedDates []string              `json:"fullyBookedDates"`
}

// UpdateConfigRequest модель запроса на обновление конфигурации
// Документ заменяется целиком (last write wins)
type UpdateConfigRequest struct {
	BusinessHours    map[string]DayHours   `json:"businessHours"`
	TimeSlots        map[string][]SlotTime `json:"timeSlots"`
	FullyBookedDates []string              `json:"fullyBookedDates"`
}

// FromDomainConfig конвертирует domain конфигурацию в модель сервиса
func FromDomainConfig(cfg *domain.AvailabilityConfig) *ConfigResponse {
	resp := &ConfigResponse{
		BusinessHours:    make(map[string]DayHours, len(cfg.BusinessHours)),
		TimeSlots:        make(map[string][]SlotTime, len(cfg.TimeSlots)),
		FullyBookedDates: append([]string{}, cfg.FullyBookedDates...),
	}

	for day, hours := range cfg.BusinessHours {
		resp.BusinessHours[day] = DayHours{
			Open:    hours.Open,
			Close:   hours.Close,
			Enabled: hours.Enabled,
		}
	}

	for key, slots := range cfg.TimeSlots {
		converted := make([]SlotTime, len(slots))
		for i, s := range slots {
			converted[i] = SlotTime{Hour: s.Hour, Minute: s.Minute}
		}
		resp.TimeSlots[key] = converted
	}

	return resp
}

// ToDomainConfig конвертирует запрос обновления в domain конфигурацию
func (r *UpdateConfigRequest) ToDomainConfig() *domain.AvailabilityConfig {
	cfg := &domain.AvailabilityConfig{
		BusinessHours:    make(map[string]domain.DayHours, len(r.BusinessHours)),
		TimeSlots:        make(map[string][]domain.SlotTime, len(r.TimeSlots)),
		FullyBookedDates: domain.DedupeDates(r.FullyBookedDates),
	}

	for day, hours := range r.BusinessHours {
		cfg.BusinessHours[day] = domain.DayHours{
			Open:    hours.Open,
			Close:   hours.Close,
			Enabled: hours.Enabled,
		}
	}

	for key, slots := range r.TimeSlots {
		converted := make([]domain.SlotTime, len(slots))
		for i, s := range slots {
			converted[i] = domain.SlotTime{Hour: s.Hour, Minute: s.Minute}
		}
		cfg.TimeSlots[key] = converted
	}

	return cfg
}
