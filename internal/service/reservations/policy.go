package reservations

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// DaysUntil количество дней до даты бронирования с округлением вверх.
// Дата берется на полночь в часовом поясе now
func DaysUntil(date time.Time, now time.Time) int {
	scheduled := domain.InLocation(date, now.Location())
	return int(math.Ceil(scheduled.Sub(now).Hours() / 24))
}

// CheckCancellationWindow клиент может отменить бронирование не позже чем за windowDays дней
func CheckCancellationWindow(date time.Time, now time.Time, windowDays int) error {
	if days := DaysUntil(date, now); days < windowDays {
		return fmt.Errorf("%w: %d day(s) left, %d required", ErrCancellationWindowViolation, days, windowDays)
	}
	return nil
}
