package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Reservation занятый слот ресурса
type Reservation struct {
	ID              int64
	Date            time.Time // календарная дата, полночь UTC
	Time            types.TimeString
	EstablishmentID int64
	ServiceTypeID   int64
	ResourceID      int64
	ClientID        int64
	CreatedAt       time.Time
}

// Day, Month, Year - внешнее представление даты
func (r *Reservation) Day() int   { return r.Date.Day() }
func (r *Reservation) Month() int { return int(r.Date.Month()) }
func (r *Reservation) Year() int  { return r.Date.Year() }

// SlotKey ключ уникальности (ресурс, дата, время)
type SlotKey struct {
	ResourceID int64
	Date       time.Time
	Time       types.TimeString
}

func (r *Reservation) SlotKey() SlotKey {
	return SlotKey{ResourceID: r.ResourceID, Date: r.Date, Time: r.Time}
}

// ReservationFilter фильтр выборки бронирований
// Незаполненные поля не участвуют в фильтрации
type ReservationFilter struct {
	EstablishmentID *int64
	ClientID        *int64
	ResourceIDs     []int64
	Date            *time.Time
	FromDate        *time.Time // включительно
	Time            *types.TimeString
}
