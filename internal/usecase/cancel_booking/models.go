package cancel_booking

import "github.com/m04kA/SMC-FacilityBooking/internal/domain"

// Request модель запроса на отмену
type Request struct {
	ReservationID int64
	Role          domain.Role
	// ClientID клиент, выполняющий отмену. Для администратора не проверяется
	ClientID int64
}

// Response отмененное бронирование
type Response struct {
	Reservation *domain.Reservation
}
