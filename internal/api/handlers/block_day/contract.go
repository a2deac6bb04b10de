package block_day

import (
	"context"

	blockDay "github.com/m04kA/SMC-FacilityBooking/internal/usecase/block_day"
)

type BlockDayUseCase interface {
	Execute(ctx context.Context, req *blockDay.Request) (*blockDay.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
