package block_day

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	blockDay "github.com/m04kA/SMC-FacilityBooking/internal/usecase/block_day"
)

// BlockDayRequest тело запроса на блокировку дня на двух ресурсах
type BlockDayRequest struct {
	Day             int    `json:"day"`
	Month           int    `json:"month"`
	Year            int    `json:"year"`
	EstablishmentID int64  `json:"establishmentId"`
	ServiceTypeID   int64  `json:"serviceTypeId"`
	ClientID        int64  `json:"clientId"`
	ResourceID      int64  `json:"resourceId"`
	ResourceID2     int64  `json:"resourceId2"`
	Weekday         string `json:"weekday,omitempty"`
}

type BlockDayResponse struct {
	Day     int      `json:"day"`
	Month   int      `json:"month"`
	Year    int      `json:"year"`
	Weekday string   `json:"weekday"`
	Slots   []string `json:"slots"`
	Created int      `json:"created"`
}

func (r *BlockDayRequest) ToUseCaseRequest() (*blockDay.Request, error) {
	date, err := domain.NewDate(r.Day, r.Month, r.Year)
	if err != nil {
		return nil, err
	}

	return &blockDay.Request{
		Date:            date,
		EstablishmentID: r.EstablishmentID,
		ServiceTypeID:   r.ServiceTypeID,
		ClientID:        r.ClientID,
		ResourceID:      r.ResourceID,
		ResourceID2:     r.ResourceID2,
		Weekday:         domain.WeekdayKind(r.Weekday),
	}, nil
}

func FromUseCaseResponse(resp *blockDay.Response) *BlockDayResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, s.String())
	}

	return &BlockDayResponse{
		Day:     resp.Date.Day(),
		Month:   int(resp.Date.Month()),
		Year:    resp.Date.Year(),
		Weekday: string(resp.Weekday),
		Slots:   slots,
		Created: resp.Created,
	}
}
