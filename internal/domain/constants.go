package domain

import "time"

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	SlotTimeFormat = "2006-01-02T15:04:05" // слот без смещения (трактуется в бизнес-таймзоне)
)

// BusinessUTCOffsetHours смещение бизнес-таймзоны салона (East Africa Time, UTC+3)
// Салон работает в одной фиксированной таймзоне, DST в ней нет,
// поэтому используем фиксированное смещение вместо tzdata
const BusinessUTCOffsetHours = 3

// BusinessLocation фиксированная бизнес-таймзона (UTC+3)
var BusinessLocation = time.FixedZone("EAT", BusinessUTCOffsetHours*60*60)

// Weekday group keys в конфигурации timeSlots
const (
	GroupWeekdays = "weekdays"
	GroupSaturday = "saturday"
	GroupSunday   = "sunday"
)

// WeekdayKeys имена дней недели в порядке индексов (Sunday=0 ... Saturday=6)
var WeekdayKeys = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// DefaultWeekdaySlots дефолтные слоты для будних дней (Пн-Пт)
var DefaultWeekdaySlots = []SlotTime{
	{Hour: 9, Minute: 30},
	{Hour: 12, Minute: 0},
	{Hour: 14, Minute: 30},
	{Hour: 16, Minute: 30},
}

// DefaultSaturdaySlots дефолтные слоты для субботы
var DefaultSaturdaySlots = []SlotTime{
	{Hour: 12, Minute: 30},
}

// DefaultSundaySlots дефолтные слоты для воскресенья
var DefaultSundaySlots = []SlotTime{
	{Hour: 12, Minute: 30},
	{Hour: 15, Minute: 0},
}

// defaultDayEnabled дефолтная доступность дня, если она не задана в конфигурации.
// Суббота по умолчанию выключена, воскресенье и будние дни включены.
// Асимметрия исторически закреплена в поведении записи - не менять
var defaultDayEnabled = map[string]bool{
	"sunday":    true,
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  false,
}

// DefaultDayEnabled возвращает дефолтную доступность для дня недели
func DefaultDayEnabled(dayKey string) bool {
	return defaultDayEnabled[dayKey]
}

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxClientNameLength         = 150
	MaxServiceNameLength        = 200
)

// AvailabilityDocumentKey ключ документа конфигурации доступности в document store
const AvailabilityDocumentKey = "availability"
