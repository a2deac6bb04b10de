package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
)

// GetAvailableSlotsUseCase строит сетку слотов ресурса на дату по часам работы
// и исключает занятые слоты, перерыв и уже прошедшее время сегодняшнего дня
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger журнал обработчика свободных слотов
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
