package get_available_slots

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/hours"
)

var (
	// ErrConfigurationMissing часы работы не заведены
	ErrConfigurationMissing = hours.ErrConfigurationMissing

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
