package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Ключи кешей, которые зависят от конфигурации доступности.
// При изменении fullyBookedDates или настроек слотов все три сбрасываются разом:
// выдача доступности, календарь слотов и закешированная публичная страница записи
const (
	KeyAvailability  = "cache:api:availability"
	KeyCalendarSlots = "cache:api:calendar-slots"
	KeyBookingPage   = "cache:page:booking"
)

// availabilityKeys все ключи, сбрасываемые при изменении доступности
var availabilityKeys = []string{
	KeyAvailability,
	KeyCalendarSlots,
	KeyBookingPage,
}

// Invalidator сбрасывает кеши доступности в Redis
type Invalidator struct {
	rdx *redis.Client
}

// NewInvalidator создает новый экземпляр инвалидатора кешей
func NewInvalidator(rdx *redis.Client) *Invalidator {
	return &Invalidator{rdx: rdx}
}

// InvalidateAvailability сбрасывает все кеши, зависящие от доступности слотов
func (i *Invalidator) InvalidateAvailability(ctx context.Context) error {
	if err := i.rdx.Del(ctx, availabilityKeys...).Err(); err != nil {
		return fmt.Errorf("%w: keys=%v: %v", ErrInvalidate, availabilityKeys, err)
	}
	return nil
}
