package agenda_summary

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// ClientFinder поиск клиента по телефону
type ClientFinder interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)
}

// UpcomingReservations ближайшие бронирования клиента
type UpcomingReservations interface {
	ListUpcomingByClient(ctx context.Context, clientID int64) ([]*domain.Reservation, error)
}

// ResourceReader названия ресурсов
type ResourceReader interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
