package eligibility

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ReservationCounter считает бронирования по фильтру
type ReservationCounter interface {
	Count(ctx context.Context, filter domain.ReservationFilter) (int, error)
}

// ClientReader читает клиента по ID
type ClientReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}
