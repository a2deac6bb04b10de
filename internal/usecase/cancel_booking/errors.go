package cancel_booking

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
)

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = reservations.ErrReservationNotFound

	// ErrCancellationWindowViolation до бронирования осталось меньше окна отмены
	ErrCancellationWindowViolation = reservations.ErrCancellationWindowViolation

	// ErrForbidden клиент отменяет чужое бронирование
	ErrForbidden = reservations.ErrForbidden

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
