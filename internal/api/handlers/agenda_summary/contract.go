package agenda_summary

import (
	"context"

	agendaSummary "github.com/m04kA/SMC-FacilityBooking/internal/usecase/agenda_summary"
)

type AgendaSummaryUseCase interface {
	Execute(ctx context.Context, req *agendaSummary.Request) (*agendaSummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
