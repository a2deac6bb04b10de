package block_day

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ReservationCounter считает бронирования по фильтру
type ReservationCounter interface {
	Count(ctx context.Context, filter domain.ReservationFilter) (int, error)
}

// ResourceReader читает ресурс по ID
type ResourceReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// ReservationWriter сохраняет бронирование
type ReservationWriter interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// HoursProvider часы работы по типу дня
type HoursProvider interface {
	HoursFor(ctx context.Context, kind domain.WeekdayKind) (domain.TimeRange, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
