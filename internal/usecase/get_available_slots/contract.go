package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ReservationFinder выборка бронирований
type ReservationFinder interface {
	Find(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// HoursProvider часы работы по типу дня
type HoursProvider interface {
	HoursFor(ctx context.Context, kind domain.WeekdayKind) (domain.TimeRange, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
