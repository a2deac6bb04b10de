package hours

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// HoursRepository интерфейс хранилища часов работы
type HoursRepository interface {
	Get(ctx context.Context, id int64) (*domain.OperatingHours, error)
	Update(ctx context.Context, h *domain.OperatingHours) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
