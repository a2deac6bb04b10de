package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ReservationCanceller отменяет бронирование с учетом владельца и окна отмены для роли
type ReservationCanceller interface {
	Cancel(ctx context.Context, id int64, role domain.Role, actingClientID int64) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
