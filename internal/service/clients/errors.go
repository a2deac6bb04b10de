package clients

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("clients: client not found")

	// ErrInvalidPhone телефон должен состоять из 11 цифр (DDD + номер)
	ErrInvalidPhone = errors.New("clients: phone must have 11 digits")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("clients: internal error")
)
