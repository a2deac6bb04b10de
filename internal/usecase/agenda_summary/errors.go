package agenda_summary

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/clients"
)

var (
	// ErrClientNotFound клиент с таким телефоном не найден
	ErrClientNotFound = clients.ErrClientNotFound

	// ErrInvalidInput телефон не из 11 цифр
	ErrInvalidInput = errors.New("agenda_summary: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("agenda_summary: internal error")
)
