package handlers

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ReservationResponse бронирование в ответах API.
// Дата передается тремя числами day, month, year
type ReservationResponse struct {
	ID              int64  `json:"id"`
	Day             int    `json:"day"`
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	Time            string `json:"time"`
	EstablishmentID int64  `json:"establishmentId"`
	ServiceTypeID   int64  `json:"serviceTypeId"`
	ResourceID      int64  `json:"resourceId"`
	ClientID        int64  `json:"clientId"`
	CreatedAt       string `json:"createdAt"`
}

func FromReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		Day:             r.Day(),
		Month:           r.Month(),
		Year:            r.Year(),
		Time:            r.Time.String(),
		EstablishmentID: r.EstablishmentID,
		ServiceTypeID:   r.ServiceTypeID,
		ResourceID:      r.ResourceID,
		ClientID:        r.ClientID,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func FromReservations(list []*domain.Reservation) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		result = append(result, FromReservation(r))
	}
	return result
}
