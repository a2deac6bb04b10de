package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается при нарушении уникальности (ресурс, дата, время)
	ErrSlotTaken = errors.New("reservation.repository: slot already reserved for resource")

	// ErrConcurrentWrite конкурентная транзакция удерживает запись или сериализация не удалась
	ErrConcurrentWrite = errors.New("reservation.repository: concurrent write conflict")

	// ErrUnknownReference ресурс или клиент бронирования не существует
	ErrUnknownReference = errors.New("reservation.repository: unknown resource or client")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
