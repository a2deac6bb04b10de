package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/ptr"
	"github.com/m04kA/SMC-FacilityBooking/pkg/sqlerr"
)

// Service запись и чтение бронирований.
// Единственный слой, который создает, переносит и удаляет бронирования
type Service struct {
	repo             ReservationRepository
	clients          ClientReader
	notifier         Notifier
	txManager        TransactionManager
	clock            TimeProvider
	cancelWindowDays int
	metrics          *metrics.Metrics
	logger           Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	repo ReservationRepository,
	clients ClientReader,
	notifier Notifier,
	txManager TransactionManager,
	clock TimeProvider,
	cancelWindowDays int,
	m *metrics.Metrics,
	logger Logger,
) *Service {
	if cancelWindowDays <= 0 {
		cancelWindowDays = domain.DefaultCancellationWindowDays
	}
	return &Service{
		repo:             repo,
		clients:          clients,
		notifier:         notifier,
		txManager:        txManager,
		clock:            clock,
		cancelWindowDays: cancelWindowDays,
		metrics:          m,
		logger:           logger,
	}
}

// Create сохраняет бронирование. Занятый слот ресурса возвращает ErrWriteConflict
func (s *Service) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if res.CreatedAt.IsZero() {
		res.CreatedAt = s.clock.Now().UTC()
	}

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrSlotTaken):
			s.logger.Warn("Create: slot taken resource=%d date=%s time=%s",
				res.ResourceID, res.Date.Format(domain.DateFormat), res.Time)
			return nil, fmt.Errorf("%w: %v", ErrWriteConflict, err)
		case errors.Is(err, reservationRepo.ErrConcurrentWrite):
			s.logger.Warn("Create: concurrent write resource=%d date=%s time=%s: %v",
				res.ResourceID, res.Date.Format(domain.DateFormat), res.Time, err)
			return nil, fmt.Errorf("%w: %v", ErrWriteConflict, err)
		case errors.Is(err, reservationRepo.ErrUnknownReference):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: reservation id=%d created for client=%d resource=%d",
		created.ID, created.ClientID, created.ResourceID)
	return created, nil
}

// Get получает бронирование по ID
func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Get: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return res, nil
}

// Reschedule полностью заменяет поля бронирования.
// Правила допуска не применяются, уникальность слота проверяется хранилищем
func (s *Service) Reschedule(ctx context.Context, id int64, upd *domain.Reservation) (*domain.Reservation, error) {
	s.logger.Info("Reschedule: reservation id=%d to resource=%d date=%s time=%s",
		id, upd.ResourceID, upd.Date.Format(domain.DateFormat), upd.Time)

	var result *domain.Reservation
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.Get(txCtx, id)
		if err != nil {
			return err
		}

		next := *upd
		next.ID = id
		next.CreatedAt = current.CreatedAt

		if err := s.repo.Update(txCtx, &next); err != nil {
			switch {
			case errors.Is(err, reservationRepo.ErrSlotTaken), errors.Is(err, reservationRepo.ErrConcurrentWrite):
				return fmt.Errorf("%w: %v", ErrWriteConflict, err)
			case errors.Is(err, reservationRepo.ErrUnknownReference):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			case errors.Is(err, reservationRepo.ErrReservationNotFound):
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Reschedule - repository error: %v", ErrInternal, err)
		}

		result = &next
		return nil
	})
	if err != nil {
		s.logger.Warn("Reschedule: reservation id=%d failed: %v", id, err)
		return nil, wrapTxError("Reschedule", err)
	}

	s.logger.Info("Reschedule: reservation id=%d updated", id)
	return result, nil
}

// Cancel удаляет бронирование.
// Клиент может отменить только свое бронирование и не позже чем за окно отмены,
// администратор любое и в любой момент.
// После удаления клиенту ставится уведомление об отмене
func (s *Service) Cancel(ctx context.Context, id int64, role domain.Role, actingClientID int64) (*domain.Reservation, error) {
	s.logger.Info("Cancel: reservation id=%d by %s id=%d", id, role, actingClientID)

	var cancelled *domain.Reservation
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.Get(txCtx, id)
		if err != nil {
			return err
		}

		if !role.IsAdministrator() {
			if res.ClientID != actingClientID {
				return fmt.Errorf("%w: reservation id=%d belongs to client=%d", ErrForbidden, id, res.ClientID)
			}
			if err := CheckCancellationWindow(res.Date, s.clock.Now(), s.cancelWindowDays); err != nil {
				return err
			}
		}

		if err := s.repo.Delete(txCtx, id); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - delete: %v", ErrInternal, err)
		}

		cancelled = res
		return nil
	})
	if err != nil {
		s.logger.Warn("Cancel: reservation id=%d rejected: %v", id, err)
		return nil, wrapTxError("Cancel", err)
	}

	if s.metrics != nil {
		s.metrics.BookingsCancelled.WithLabelValues(role.String()).Inc()
	}
	s.logger.Info("Cancel: reservation id=%d deleted", id)

	s.notifyCancelled(ctx, cancelled)
	return cancelled, nil
}

// ListByEstablishmentDay бронирования заведения на дату
func (s *Service) ListByEstablishmentDay(ctx context.Context, establishmentID int64, date time.Time) ([]*domain.Reservation, error) {
	return s.find(ctx, "ListByEstablishmentDay", domain.ReservationFilter{
		EstablishmentID: &establishmentID,
		Date:            &date,
	})
}

// ListByResource все бронирования ресурса
func (s *Service) ListByResource(ctx context.Context, resourceID int64) ([]*domain.Reservation, error) {
	return s.find(ctx, "ListByResource", domain.ReservationFilter{
		ResourceIDs: []int64{resourceID},
	})
}

// ListByClient все бронирования клиента
func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]*domain.Reservation, error) {
	return s.find(ctx, "ListByClient", domain.ReservationFilter{
		ClientID: &clientID,
	})
}

// ListUpcomingByClient бронирования клиента начиная с сегодняшнего дня
func (s *Service) ListUpcomingByClient(ctx context.Context, clientID int64) ([]*domain.Reservation, error) {
	return s.find(ctx, "ListUpcomingByClient", domain.ReservationFilter{
		ClientID: &clientID,
		FromDate: ptr.Ptr(domain.DateOf(s.clock.Now())),
	})
}

func (s *Service) find(ctx context.Context, op string, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	list, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return list, nil
}

func (s *Service) notifyCancelled(ctx context.Context, res *domain.Reservation) {
	if s.notifier == nil || s.notifier.IsSystemClient(res.ClientID) {
		return
	}

	client, err := s.clients.GetByID(ctx, res.ClientID)
	if err != nil {
		s.logger.Warn("Cancel: cannot load client=%d for notification: %v", res.ClientID, err)
		return
	}

	s.notifier.Notify(ctx, domain.NotificationCancellation, res, client)
}

// wrapTxError ошибки сервиса возвращаются как есть, ошибки транзакции становятся ErrInternal
func wrapTxError(op string, err error) error {
	for _, known := range []error{ErrReservationNotFound, ErrWriteConflict, ErrCancellationWindowViolation, ErrForbidden, ErrInvalidInput, ErrInternal} {
		if errors.Is(err, known) {
			return err
		}
	}
	if sqlerr.IsSerializationFailure(err) {
		return fmt.Errorf("%w: %s - transaction: %v", ErrWriteConflict, op, err)
	}
	return fmt.Errorf("%w: %s - transaction: %v", ErrInternal, op, err)
}
