package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	clientRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/client"
)

// PhoneDigits длина телефона без кода страны
const PhoneDigits = 11

// Service сервис клиентов заведения
type Service struct {
	repo   ClientRepository
	logger Logger
}

func NewService(repo ClientRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает клиента по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapError("GetByID", err)
	}
	return client, nil
}

// GetByPhone находит клиента по телефону. Из номера удаляются все символы, кроме цифр
func (s *Service) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	client, err := s.repo.GetByPhone(ctx, normalized)
	if err != nil {
		return nil, s.mapError("GetByPhone", err)
	}
	return client, nil
}

// SetEnabled включает или выключает клиенту возможность бронировать
func (s *Service) SetEnabled(ctx context.Context, id int64, enabled bool) (*domain.Client, error) {
	s.logger.Info("SetEnabled: client=%d enabled=%t", id, enabled)

	if err := s.repo.SetEnabled(ctx, id, enabled); err != nil {
		return nil, s.mapError("SetEnabled", err)
	}

	return s.GetByID(ctx, id)
}

func (s *Service) mapError(op string, err error) error {
	if errors.Is(err, clientRepo.ErrClientNotFound) {
		return ErrClientNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// NormalizePhone оставляет в номере только цифры и проверяет длину
func NormalizePhone(phone string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if len(digits) != PhoneDigits {
		return "", fmt.Errorf("%w: got %q", ErrInvalidPhone, phone)
	}
	return digits, nil
}
