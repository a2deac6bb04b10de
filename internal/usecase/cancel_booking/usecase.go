package cancel_booking

import (
	"context"
	"errors"
	"fmt"
)

// UseCase отмена бронирования клиентом или администратором
type UseCase struct {
	canceller ReservationCanceller
	logger    Logger
}

func NewUseCase(canceller ReservationCanceller, logger Logger) *UseCase {
	return &UseCase{
		canceller: canceller,
		logger:    logger,
	}
}

// Execute отменяет бронирование. Владелец и окно отмены проверяются только для роли клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}

	res, err := uc.canceller.Cancel(ctx, req.ReservationID, req.Role, req.ClientID)
	if err != nil {
		if errors.Is(err, ErrReservationNotFound) ||
			errors.Is(err, ErrCancellationWindowViolation) ||
			errors.Is(err, ErrForbidden) {
			return nil, err
		}
		uc.logger.Error("CancelBooking: reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Reservation: res}, nil
}
