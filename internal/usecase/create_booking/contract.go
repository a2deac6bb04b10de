package create_booking

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/eligibility"
)

// EligibilityChecker проверяет правила допуска бронирования
type EligibilityChecker interface {
	Check(ctx context.Context, cand eligibility.Candidate) (*domain.Client, error)
}

// ClientReader читает клиента, от имени которого бронирует администратор
type ClientReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// ReservationWriter сохраняет бронирование
type ReservationWriter interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// Notifier ставит уведомление в очередь доставки
type Notifier interface {
	Notify(ctx context.Context, kind domain.NotificationKind, res *domain.Reservation, client *domain.Client)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
