package block_day

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Request модель запроса на блокировку дня
type Request struct {
	Date            time.Time
	EstablishmentID int64
	ServiceTypeID   int64
	ClientID        int64              // 0 означает системного клиента
	ResourceID      int64              // первый ресурс
	ResourceID2     int64              // второй ресурс
	Weekday         domain.WeekdayKind // пусто - определить по дате
}

// Response результат блокировки
type Response struct {
	Date    time.Time
	Weekday domain.WeekdayKind
	Slots   []types.TimeString // заблокированные слоты
	Created int                // созданных строк, 2 на слот
}
