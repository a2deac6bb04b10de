package create_booking

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Role            domain.Role      // От чьего имени создается бронирование
	ClientID        int64            // ID клиента (для администратора 0 означает системного клиента)
	Date            time.Time        // Дата бронирования
	Time            types.TimeString // Время слота, например "10:00"
	EstablishmentID int64
	ServiceTypeID   int64
	ResourceID      int64
}

// Response созданное бронирование
type Response struct {
	Reservation *domain.Reservation
}
