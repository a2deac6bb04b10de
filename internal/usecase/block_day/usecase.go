package block_day

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	resourceRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/resource"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/metrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// UseCase блокировка всего дня на двух ресурсах
type UseCase struct {
	resources      ResourceReader
	counter        ReservationCounter
	writer         ReservationWriter
	hours          HoursProvider
	txManager      TransactionManager
	systemClientID int64
	stepMinutes    int
	metrics        *metrics.Metrics
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resources ResourceReader,
	counter ReservationCounter,
	writer ReservationWriter,
	hours HoursProvider,
	txManager TransactionManager,
	systemClientID int64,
	stepMinutes int,
	m *metrics.Metrics,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		resources:      resources,
		counter:        counter,
		writer:         writer,
		hours:          hours,
		txManager:      txManager,
		systemClientID: systemClientID,
		stepMinutes:    stepMinutes,
		metrics:        m,
		logger:         logger,
	}
}

// Execute занимает все слоты дня на обоих ресурсах.
// Все бронирования создаются в одной транзакции: либо весь день, либо ничего.
// ErrPartialFailure означает, что до отката успела пройти хотя бы одна запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockDay: date=%s establishment=%d resources=%d,%d weekday=%q",
		req.Date.Format(domain.DateFormat), req.EstablishmentID, req.ResourceID, req.ResourceID2, req.Weekday)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockDay: validation failed: %v", err)
		return nil, err
	}

	kind := req.Weekday
	if kind == "" {
		kind = domain.WeekdayKindOf(req.Date)
	}

	clientID := req.ClientID
	if clientID == 0 {
		clientID = uc.systemClientID
	}

	var (
		blocked []types.TimeString
		created int
	)
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, resourceID := range []int64{req.ResourceID, req.ResourceID2} {
			if _, err := uc.resources.GetByID(txCtx, resourceID); err != nil {
				if errors.Is(err, resourceRepo.ErrResourceNotFound) {
					return fmt.Errorf("%w: resource %d not found", ErrInvalidInput, resourceID)
				}
				return fmt.Errorf("%w: get resource %d: %v", ErrInternal, resourceID, err)
			}
		}

		existing, err := uc.counter.Count(txCtx, domain.ReservationFilter{
			EstablishmentID: &req.EstablishmentID,
			ResourceIDs:     []int64{req.ResourceID, req.ResourceID2},
			Date:            &req.Date,
		})
		if err != nil {
			return fmt.Errorf("%w: count existing reservations: %v", ErrInternal, err)
		}
		if existing > 0 {
			return fmt.Errorf("%w: %d reservation(s) found", ErrDayAlreadyOccupied, existing)
		}

		interval, err := uc.hours.HoursFor(txCtx, kind)
		if err != nil {
			if errors.Is(err, ErrConfigurationMissing) {
				return err
			}
			return fmt.Errorf("%w: operating hours: %v", ErrInternal, err)
		}

		grid := slots.Generate(interval.Opening, interval.Closing, uc.stepMinutes)
		for _, slot := range grid {
			for _, resourceID := range []int64{req.ResourceID, req.ResourceID2} {
				_, err := uc.writer.Create(txCtx, &domain.Reservation{
					Date:            req.Date,
					Time:            slot,
					EstablishmentID: req.EstablishmentID,
					ServiceTypeID:   req.ServiceTypeID,
					ResourceID:      resourceID,
					ClientID:        clientID,
				})
				if err != nil {
					if created == 0 {
						return firstWriteError(resourceID, slot, err)
					}
					return fmt.Errorf("%w: slot %s resource %d (%d of %d slots done): %w",
						ErrPartialFailure, slot, resourceID, len(blocked), len(grid), err)
				}
				created++
			}
			blocked = append(blocked, slot)
		}
		return nil
	})
	if err != nil {
		return nil, uc.fail(err, created)
	}

	uc.observe("blocked")
	uc.logger.Info("BlockDay: %d slots blocked on %s for resources %d,%d",
		len(blocked), req.Date.Format(domain.DateFormat), req.ResourceID, req.ResourceID2)

	if blocked == nil {
		blocked = []types.TimeString{}
	}
	return &Response{
		Date:    req.Date,
		Weekday: kind,
		Slots:   blocked,
		Created: 2 * len(blocked),
	}, nil
}

// firstWriteError первая запись не удалась, в базе еще ничего не изменилось
func firstWriteError(resourceID int64, slot types.TimeString, err error) error {
	switch {
	case errors.Is(err, reservations.ErrInvalidInput):
		return fmt.Errorf("%w: slot %s resource %d: %v", ErrInvalidInput, slot, resourceID, err)
	case errors.Is(err, reservations.ErrWriteConflict):
		return fmt.Errorf("%w: slot %s resource %d taken concurrently: %v", ErrDayAlreadyOccupied, slot, resourceID, err)
	}
	return fmt.Errorf("%w: slot %s resource %d: %v", ErrInternal, slot, resourceID, err)
}

func (uc *UseCase) fail(err error, created int) error {
	switch {
	case errors.Is(err, ErrDayAlreadyOccupied):
		uc.observe("occupied")
		uc.logger.Warn("BlockDay: rejected: %v", err)
		return err
	case errors.Is(err, ErrConfigurationMissing):
		uc.observe("no_hours")
		uc.logger.Error("BlockDay: operating hours missing")
		return err
	case errors.Is(err, ErrPartialFailure):
		uc.observe("partial_failure")
		uc.logger.Error("BlockDay: rolled back: %v", err)
		return err
	case errors.Is(err, ErrInvalidInput):
		uc.observe("invalid")
		uc.logger.Warn("BlockDay: rejected: %v", err)
		return err
	case errors.Is(err, ErrInternal):
		uc.observe("error")
		uc.logger.Error("BlockDay: %v", err)
		return err
	}

	if created == 0 {
		uc.observe("error")
		uc.logger.Error("BlockDay: transaction failed: %v", err)
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// Все слоты записаны, но транзакция не зафиксировалась
	uc.observe("partial_failure")
	uc.logger.Error("BlockDay: transaction failed: %v", err)
	return fmt.Errorf("%w: %w", ErrPartialFailure, err)
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.DaysBlockedTotal.WithLabelValues(outcome).Inc()
	}
}
