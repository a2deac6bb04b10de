package list_reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type ReservationService interface {
	ListByEstablishmentDay(ctx context.Context, establishmentID int64, date time.Time) ([]*domain.Reservation, error)
	ListByResource(ctx context.Context, resourceID int64) ([]*domain.Reservation, error)
	ListByClient(ctx context.Context, clientID int64) ([]*domain.Reservation, error)
	ListUpcomingByClient(ctx context.Context, clientID int64) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
