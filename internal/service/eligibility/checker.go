package eligibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	clientRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Candidate бронирование, которое клиент пытается создать
type Candidate struct {
	ClientID int64
	Date     time.Time
	Time     types.TimeString
	Role     domain.Role
}

// Facts данные о клиенте, по которым принимается решение
type Facts struct {
	Role           domain.Role
	ReservedOnDay  int // активные бронирования клиента на эту дату
	ReservedAtSlot int // бронирования клиента на эту дату и время, на любом ресурсе
	Client         *domain.Client
}

// Decide применяет правила допуска по порядку и останавливается на первом нарушении.
// Администратор допускается без проверок
func Decide(f Facts, dailyLimit int) error {
	if f.Role.IsAdministrator() {
		return nil
	}
	if f.ReservedOnDay >= dailyLimit {
		return fmt.Errorf("%w: %d of %d", ErrDailyLimitExceeded, f.ReservedOnDay, dailyLimit)
	}
	if f.ReservedAtSlot >= 1 {
		return ErrSlotAlreadyTaken
	}
	if f.Client == nil || !f.Client.Enabled {
		return ErrClientBlocked
	}
	return nil
}

// Checker собирает факты из хранилища и принимает решение о допуске
// Только читает данные, поэтому две параллельные проверки могут пройти обе:
// окончательную защиту дает уникальный индекс при записи
type Checker struct {
	reservations ReservationCounter
	clients      ClientReader
	dailyLimit   int
}

func NewChecker(reservations ReservationCounter, clients ClientReader, dailyLimit int) *Checker {
	if dailyLimit <= 0 {
		dailyLimit = domain.DefaultDailyReservationLimit
	}
	return &Checker{
		reservations: reservations,
		clients:      clients,
		dailyLimit:   dailyLimit,
	}
}

// Check возвращает клиента, если бронирование допустимо.
// Для администратора клиента не читает и возвращает nil
func (c *Checker) Check(ctx context.Context, cand Candidate) (*domain.Client, error) {
	if cand.Role.IsAdministrator() {
		return nil, nil
	}

	client, err := c.clients.GetByID(ctx, cand.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("%w: get client: %v", ErrInternal, err)
	}

	onDay, err := c.reservations.Count(ctx, domain.ReservationFilter{
		ClientID: &cand.ClientID,
		Date:     &cand.Date,
	})
	if err != nil {
		return nil, countError("count day reservations", err)
	}

	atSlot := 0
	// При превышении дневного лимита второй запрос не нужен
	if onDay < c.dailyLimit {
		atSlot, err = c.reservations.Count(ctx, domain.ReservationFilter{
			ClientID: &cand.ClientID,
			Date:     &cand.Date,
			Time:     &cand.Time,
		})
		if err != nil {
			return nil, countError("count slot reservations", err)
		}
	}

	if err := Decide(Facts{
		Role:           cand.Role,
		ReservedOnDay:  onDay,
		ReservedAtSlot: atSlot,
		Client:         client,
	}, c.dailyLimit); err != nil {
		return nil, err
	}

	return client, nil
}

func countError(op string, err error) error {
	if errors.Is(err, reservationRepo.ErrConcurrentWrite) {
		return fmt.Errorf("%w: %s: %v", ErrWriteConflict, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}
