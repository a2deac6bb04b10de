package agenda_summary

import "github.com/m04kA/SMC-FacilityBooking/internal/domain"

// Request запрос сводки по телефону клиента
type Request struct {
	Phone string
}

// Entry одно бронирование в сводке
type Entry struct {
	Reservation  *domain.Reservation
	ResourceName string
	Line         string // "dd/MM/yyyy - HH:MM, no campo: <ресурс>"
}

// Response сводка ближайших бронирований клиента
type Response struct {
	Client  *domain.Client
	Entries []Entry
}
