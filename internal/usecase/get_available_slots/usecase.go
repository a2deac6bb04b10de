package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/slots"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// UseCase use case для получения свободных слотов ресурса на дату
type UseCase struct {
	reservations ReservationFinder
	hours        HoursProvider
	timeProvider TimeProvider
	stepMinutes  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations ReservationFinder,
	hours HoursProvider,
	timeProvider TimeProvider,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		reservations: reservations,
		hours:        hours,
		timeProvider: timeProvider,
		stepMinutes:  stepMinutes,
		logger:       logger,
	}
}

// Execute возвращает сетку слотов дня без занятых ресурсом и уже начавшихся
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: resource=%d date=%s", req.ResourceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	kind := domain.WeekdayKindOf(req.Date)
	interval, err := uc.hours.HoursFor(ctx, kind)
	if err != nil {
		if errors.Is(err, ErrConfigurationMissing) {
			return nil, err
		}
		uc.logger.Error("GetAvailableSlots: failed to get hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get hours: %v", ErrInternal, err)
	}

	existing, err := uc.reservations.Find(ctx, domain.ReservationFilter{
		ResourceIDs: []int64{req.ResourceID},
		Date:        &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	occupied := make([]types.TimeString, 0, len(existing))
	for _, r := range existing {
		occupied = append(occupied, r.Time)
	}

	grid := slots.Generate(interval.Opening, interval.Closing, uc.stepMinutes)
	free := dropStarted(slots.Free(grid, occupied), req.Date, uc.timeProvider.Now())

	uc.logger.Info("GetAvailableSlots: %d of %d slots free for resource=%d date=%s",
		len(free), len(grid), req.ResourceID, req.Date.Format(domain.DateFormat))

	return &Response{
		ResourceID: req.ResourceID,
		Date:       req.Date,
		Weekday:    kind,
		Hours:      interval,
		Slots:      free,
	}, nil
}
