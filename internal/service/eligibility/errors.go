package eligibility

import "errors"

var (
	// ErrDailyLimitExceeded у клиента уже есть максимум бронирований на этот день
	ErrDailyLimitExceeded = errors.New("eligibility: daily reservation limit exceeded")

	// ErrSlotAlreadyTaken у клиента уже есть бронирование на это время (на любом ресурсе)
	ErrSlotAlreadyTaken = errors.New("eligibility: client already holds this time slot")

	// ErrClientBlocked клиенту запрещено бронировать
	ErrClientBlocked = errors.New("eligibility: client is blocked")

	// ErrClientNotFound клиент не существует
	ErrClientNotFound = errors.New("eligibility: client not found")

	// ErrWriteConflict конкурентная транзакция удерживает бронирования
	ErrWriteConflict = errors.New("eligibility: concurrent reservation write")

	ErrInternal = errors.New("eligibility: internal error")
)
