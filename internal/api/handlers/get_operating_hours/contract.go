package get_operating_hours

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type HoursService interface {
	Get(ctx context.Context) (*domain.OperatingHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
