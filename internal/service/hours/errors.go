package hours

import "errors"

var (
	// ErrConfigurationMissing возвращается, когда запись часов работы не заведена
	ErrConfigurationMissing = errors.New("hours: operating hours are not configured")

	// ErrInvalidTimeRange возвращается, когда открытие не раньше закрытия или обед вне рабочего времени
	ErrInvalidTimeRange = errors.New("hours: invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hours: internal error")
)
