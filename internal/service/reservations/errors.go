package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservations: reservation not found")

	// ErrWriteConflict ресурс уже занят на эту дату и время
	ErrWriteConflict = errors.New("reservations: resource slot already reserved")

	// ErrCancellationWindowViolation клиент отменяет бронирование позже, чем за окно отмены
	ErrCancellationWindowViolation = errors.New("reservations: too late to cancel")

	// ErrForbidden клиент пытается изменить чужое бронирование
	ErrForbidden = errors.New("reservations: reservation belongs to another client")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations: internal error")
)
