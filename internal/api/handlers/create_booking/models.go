package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid time")
)

// CreateBookingRequest тело запроса на бронирование слота
type CreateBookingRequest struct {
	ClientID        int64  `json:"clientId"`
	Day             int    `json:"day"`
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	Time            string `json:"time"`
	EstablishmentID int64  `json:"establishmentId"`
	ServiceTypeID   int64  `json:"serviceTypeId"`
	ResourceID      int64  `json:"resourceId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(role domain.Role) (*createBooking.Request, error) {
	date, err := domain.NewDate(r.Day, r.Month, r.Year)
	if err != nil {
		return nil, errInvalidDate
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createBooking.Request{
		Role:            role,
		ClientID:        r.ClientID,
		Date:            date,
		Time:            slot,
		EstablishmentID: r.EstablishmentID,
		ServiceTypeID:   r.ServiceTypeID,
		ResourceID:      r.ResourceID,
	}, nil
}
