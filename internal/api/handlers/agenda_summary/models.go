package agenda_summary

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	agendaSummary "github.com/m04kA/SMC-FacilityBooking/internal/usecase/agenda_summary"
)

type EntryResponse struct {
	Reservation  handlers.ReservationResponse `json:"reservation"`
	ResourceName string                       `json:"resourceName"`
	Line         string                       `json:"line"`
}

// AgendaResponse ближайшие бронирования клиента в виде строк для чат-бота
type AgendaResponse struct {
	ClientID   int64           `json:"clientId"`
	ClientName string          `json:"clientName"`
	Entries    []EntryResponse `json:"entries"`
}

func FromUseCaseResponse(resp *agendaSummary.Response) *AgendaResponse {
	entries := make([]EntryResponse, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, EntryResponse{
			Reservation:  handlers.FromReservation(e.Reservation),
			ResourceName: e.ResourceName,
			Line:         e.Line,
		})
	}

	return &AgendaResponse{
		ClientID:   resp.Client.ID,
		ClientName: resp.Client.Name,
		Entries:    entries,
	}
}
