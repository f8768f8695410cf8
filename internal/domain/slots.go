package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// datePattern строгий формат даты YYYY-MM-DD
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateString проверяет, что строка соответствует формату YYYY-MM-DD
// и является реальной календарной датой
func IsValidDateString(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.ParseInLocation(DateFormat, date, BusinessLocation)
	return err == nil
}

// WeekdayIndex возвращает индекс дня недели (Sunday=0 ... Saturday=6)
// для даты YYYY-MM-DD в бизнес-таймзоне салона.
//
// Дата якорится на полдень: якорь на полночь рискует перескочить
// на соседний календарный день при конвертации между UTC и смещением,
// полдень делает календарную дату однозначной.
//
// Второе возвращаемое значение false, если строка не является датой
func WeekdayIndex(date string) (int, bool) {
	if !datePattern.MatchString(date) {
		return 0, false
	}

	parsed, err := time.ParseInLocation(DateFormat, date, BusinessLocation)
	if err != nil {
		return 0, false
	}

	noon := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 12, 0, 0, 0, BusinessLocation)
	return int(noon.In(BusinessLocation).Weekday()), true
}

// slotTimesForDay выбирает список слотов для дня недели по приоритету:
//  1. Воскресенье: timeSlots.sunday (если непустой) -> дефолт воскресенья
//  2. Суббота: timeSlots.saturday -> timeSlots.weekdays -> дефолт субботы
//  3. Будний день: timeSlots[dayKey] -> timeSlots.weekdays -> дефолт будних
//
// Пустой сконфигурированный список равнозначен отсутствию ключа:
// fallback срабатывает по пустоте, а не только по отсутствию
func slotTimesForDay(weekday int, dayKey string, cfg *AvailabilityConfig) []SlotTime {
	var slots map[string][]SlotTime
	if cfg != nil {
		slots = cfg.TimeSlots
	}

	pick := func(key string) []SlotTime {
		if len(slots[key]) > 0 {
			return slots[key]
		}
		return nil
	}

	switch {
	case weekday == 0: // воскресенье
		if s := pick(GroupSunday); s != nil {
			return s
		}
		return DefaultSundaySlots

	case weekday == 6: // суббота
		if s := pick(GroupSaturday); s != nil {
			return s
		}
		if s := pick(GroupWeekdays); s != nil {
			return s
		}
		return DefaultSaturdaySlots

	default: // будний день
		if s := pick(dayKey); s != nil {
			return s
		}
		if s := pick(GroupWeekdays); s != nil {
			return s
		}
		return DefaultWeekdaySlots
	}
}

// GenerateDaySlots генерирует упорядоченный список ISO-8601 слотов
// (с суффиксом +03:00) на указанную дату.
//
// Возвращает пустой список, если дата некорректна или день выключен.
// Порядок слотов повторяет порядок в конфигурации, без сортировки и дедупликации
func GenerateDaySlots(date string, cfg *AvailabilityConfig) []string {
	weekday, ok := WeekdayIndex(date)
	if !ok {
		return []string{}
	}

	dayKey := WeekdayKeys[weekday]

	if !cfg.DayEnabled(dayKey) {
		return []string{}
	}

	times := slotTimesForDay(weekday, dayKey, cfg)

	result := make([]string, 0, len(times))
	for _, t := range times {
		result = append(result, fmt.Sprintf("%sT%02d:%02d:00+03:00", date, t.Hour, t.Minute))
	}
	return result
}

// NormalizeSlotKey приводит строку времени слота к ключу сравнения,
// независимому от таймзоны и формата записи: epoch-миллисекунды десятичной строкой.
//
// Нечитаемая строка дает пустой ключ - он никогда не совпадет с реальным слотом,
// так как реальные слоты всегда нормализуются в непустую числовую строку
func NormalizeSlotKey(slot string) string {
	if slot == "" {
		return ""
	}

	if t, err := time.Parse(time.RFC3339, slot); err == nil {
		return strconv.FormatInt(t.UnixMilli(), 10)
	}

	// Запись без смещения трактуем в бизнес-таймзоне
	if t, err := time.ParseInLocation(SlotTimeFormat, slot, BusinessLocation); err == nil {
		return strconv.FormatInt(t.UnixMilli(), 10)
	}

	return ""
}
