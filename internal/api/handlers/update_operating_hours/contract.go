package update_operating_hours

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type HoursService interface {
	Update(ctx context.Context, h *domain.OperatingHours) (*domain.OperatingHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
