package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	hoursRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/hours"
)

// Service поставщик часов работы
type Service struct {
	repo    HoursRepository
	hoursID int64
	logger  Logger
}

// NewService создает сервис часов работы для записи с ID hoursID
func NewService(repo HoursRepository, hoursID int64, logger Logger) *Service {
	return &Service{
		repo:    repo,
		hoursID: hoursID,
		logger:  logger,
	}
}

// Get возвращает запись часов работы целиком
func (s *Service) Get(ctx context.Context) (*domain.OperatingHours, error) {
	h, err := s.repo.Get(ctx, s.hoursID)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Warn("Hours: record id=%d not found", s.hoursID)
			return nil, ErrConfigurationMissing
		}
		s.logger.Error("Hours: repository error for id=%d: %v", s.hoursID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return h, nil
}

// HoursFor возвращает интервал [открытие, закрытие) для типа дня
func (s *Service) HoursFor(ctx context.Context, kind domain.WeekdayKind) (domain.TimeRange, error) {
	h, err := s.Get(ctx)
	if err != nil {
		return domain.TimeRange{}, err
	}
	return h.For(kind), nil
}

// Update проверяет и сохраняет новые часы работы
// Некорректные интервалы отклоняются до записи в хранилище
func (s *Service) Update(ctx context.Context, h *domain.OperatingHours) (*domain.OperatingHours, error) {
	s.logger.Info("UpdateHours: weekday=%s-%s saturday=%s-%s lunch=%s-%s",
		h.Weekday.Opening, h.Weekday.Closing, h.Saturday.Opening, h.Saturday.Closing, h.Lunch.Opening, h.Lunch.Closing)

	if err := Validate(h); err != nil {
		s.logger.Warn("UpdateHours: validation failed: %v", err)
		return nil, err
	}

	h.ID = s.hoursID
	if err := s.repo.Update(ctx, h); err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Warn("UpdateHours: record id=%d not found", s.hoursID)
			return nil, ErrConfigurationMissing
		}
		s.logger.Error("UpdateHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHours: successfully updated record id=%d", s.hoursID)
	return h, nil
}
