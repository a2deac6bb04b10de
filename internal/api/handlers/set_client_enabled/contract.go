package set_client_enabled

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

type ClientService interface {
	SetEnabled(ctx context.Context, id int64, enabled bool) (*domain.Client, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
