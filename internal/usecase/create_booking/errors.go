package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/eligibility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
)

var (
	// ErrDailyLimitExceeded у клиента уже есть максимум бронирований на этот день
	ErrDailyLimitExceeded = eligibility.ErrDailyLimitExceeded

	// ErrSlotAlreadyTaken у клиента уже есть бронирование на это время
	ErrSlotAlreadyTaken = eligibility.ErrSlotAlreadyTaken

	// ErrClientBlocked клиенту запрещено бронировать
	ErrClientBlocked = eligibility.ErrClientBlocked

	// ErrClientNotFound клиент не найден
	ErrClientNotFound = eligibility.ErrClientNotFound

	// ErrWriteConflict ресурс уже занят другим бронированием
	ErrWriteConflict = reservations.ErrWriteConflict

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
