package reschedule_booking

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type ReservationService interface {
	Reschedule(ctx context.Context, id int64, upd *domain.Reservation) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
