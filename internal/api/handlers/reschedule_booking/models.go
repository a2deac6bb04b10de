package reschedule_booking

import (
	"errors"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

var errInvalidFields = errors.New("invalid reservation fields")

// RescheduleRequest новое состояние бронирования, заменяет все поля
type RescheduleRequest struct {
	ClientID        int64  `json:"clientId"`
	Day             int    `json:"day"`
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	Time            string `json:"time"`
	EstablishmentID int64  `json:"establishmentId"`
	ServiceTypeID   int64  `json:"serviceTypeId"`
	ResourceID      int64  `json:"resourceId"`
}

func (r *RescheduleRequest) ToDomain() (*domain.Reservation, error) {
	date, err := domain.NewDate(r.Day, r.Month, r.Year)
	if err != nil {
		return nil, err
	}

	slot, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	if r.ClientID <= 0 || r.EstablishmentID <= 0 || r.ServiceTypeID <= 0 || r.ResourceID <= 0 {
		return nil, errInvalidFields
	}

	return &domain.Reservation{
		Date:            date,
		Time:            slot,
		EstablishmentID: r.EstablishmentID,
		ServiceTypeID:   r.ServiceTypeID,
		ResourceID:      r.ResourceID,
		ClientID:        r.ClientID,
	}, nil
}
