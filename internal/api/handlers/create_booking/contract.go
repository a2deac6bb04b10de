package create_booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
)

// CreateBookingUseCase бронирует слот ресурса: правила допуска клиента
// и запись выполняются в одной транзакции, занятый слот дает конфликт
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Logger журнал обработчика бронирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
