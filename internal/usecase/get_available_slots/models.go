package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модель запроса на получение свободных слотов ресурса
type Request struct {
	ResourceID int64
	Date       time.Time
}

// Response модель ответа со списком свободных слотов
type Response struct {
	ResourceID int64
	Date       time.Time
	Weekday    domain.WeekdayKind
	Hours      domain.TimeRange
	Slots      []types.TimeString
}
