package block_day

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/hours"
)

var (
	// ErrDayAlreadyOccupied на одном из ресурсов уже есть бронирование в этот день
	ErrDayAlreadyOccupied = errors.New("block_day: day already has reservations on these resources")

	// ErrPartialFailure часть слотов уже записана, следующая запись не удалась, транзакция откатена
	ErrPartialFailure = errors.New("block_day: day blocking aborted")

	// ErrConfigurationMissing часы работы не заведены
	ErrConfigurationMissing = hours.ErrConfigurationMissing

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_day: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_day: internal error")
)
