package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse свободные слоты ресурса на дату
type AvailableSlotsResponse struct {
	ResourceID int64    `json:"resourceId"`
	Day        int      `json:"day"`
	Month      int      `json:"month"`
	Year       int      `json:"year"`
	Weekday    string   `json:"weekday"`
	Opening    string   `json:"opening"`
	Closing    string   `json:"closing"`
	Slots      []string `json:"slots"`
}

func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &AvailableSlotsResponse{
		ResourceID: resp.ResourceID,
		Day:        resp.Date.Day(),
		Month:      int(resp.Date.Month()),
		Year:       resp.Date.Year(),
		Weekday:    string(resp.Weekday),
		Opening:    resp.Hours.Opening.String(),
		Closing:    resp.Hours.Closing.String(),
		Slots:      slots,
	}
}
