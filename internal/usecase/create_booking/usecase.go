package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/clients"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/eligibility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/sqlerr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	checker        EligibilityChecker
	clients        ClientReader
	writer         ReservationWriter
	notifier       Notifier
	txManager      TransactionManager
	systemClientID int64
	metrics        *metrics.Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	checker EligibilityChecker,
	clients ClientReader,
	writer ReservationWriter,
	notifier Notifier,
	txManager TransactionManager,
	systemClientID int64,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		checker:        checker,
		clients:        clients,
		writer:         writer,
		notifier:       notifier,
		txManager:      txManager,
		systemClientID: systemClientID,
		metrics:        m,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка допуска и запись идут в одной сериализуемой транзакции,
// уведомление о подтверждении ставится в очередь после фиксации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: role=%s client=%d resource=%d date=%s time=%s",
		req.Role, req.ClientID, req.ResourceID, req.Date.Format(domain.DateFormat), req.Time)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	clientID := req.ClientID
	if clientID == 0 {
		clientID = uc.systemClientID
	}

	var (
		client  *domain.Client
		created *domain.Reservation
	)
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		client, err = uc.checker.Check(txCtx, eligibility.Candidate{
			ClientID: clientID,
			Date:     req.Date,
			Time:     req.Time,
			Role:     req.Role,
		})
		if err != nil {
			return err
		}

		// Администратор бронирует от имени клиента: клиент должен существовать
		if client == nil && clientID != uc.systemClientID {
			client, err = uc.clients.GetByID(txCtx, clientID)
			if err != nil {
				if errors.Is(err, clients.ErrClientNotFound) {
					return fmt.Errorf("%w: client=%d", ErrClientNotFound, clientID)
				}
				return err
			}
		}

		created, err = uc.writer.Create(txCtx, &domain.Reservation{
			Date:            req.Date,
			Time:            req.Time,
			EstablishmentID: req.EstablishmentID,
			ServiceTypeID:   req.ServiceTypeID,
			ResourceID:      req.ResourceID,
			ClientID:        clientID,
		})
		return err
	})
	if err != nil {
		return nil, uc.reject(clientID, err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingsCreatedTotal.WithLabelValues(req.Role.String()).Inc()
	}
	uc.logger.Info("CreateBooking: reservation id=%d created for client=%d", created.ID, clientID)

	// Бронирование на системного клиента подтверждать некому
	if client != nil && clientID != uc.systemClientID {
		uc.notifier.Notify(ctx, domain.NotificationConfirmation, created, client)
	}

	return &Response{Reservation: created}, nil
}

func (uc *UseCase) reject(clientID int64, err error) error {
	var reason string
	switch {
	case errors.Is(err, ErrDailyLimitExceeded):
		reason = "daily_limit"
	case errors.Is(err, ErrSlotAlreadyTaken):
		reason = "slot_taken"
	case errors.Is(err, ErrClientBlocked):
		reason = "client_blocked"
	case errors.Is(err, ErrClientNotFound):
		reason = "client_not_found"
	case errors.Is(err, ErrWriteConflict):
		reason = "write_conflict"
	case errors.Is(err, eligibility.ErrWriteConflict), sqlerr.IsSerializationFailure(err):
		// Конкурентная транзакция заняла слот первой
		reason = "write_conflict"
		err = fmt.Errorf("%w: %v", ErrWriteConflict, err)
	case errors.Is(err, reservations.ErrInvalidInput):
		reason = "unknown_reference"
		err = fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		uc.logger.Error("CreateBooking: client=%d failed: %v", clientID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.BookingsRejectedTotal.WithLabelValues(reason).Inc()
	}
	uc.logger.Warn("CreateBooking: client=%d rejected (%s): %v", clientID, reason, err)
	return err
}
