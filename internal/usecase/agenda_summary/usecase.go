package agenda_summary

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/clients"
)

// UseCase сводка ближайших бронирований клиента по номеру телефона
type UseCase struct {
	clients      ClientFinder
	reservations UpcomingReservations
	resources    ResourceReader
	logger       Logger
}

func NewUseCase(
	clientFinder ClientFinder,
	reservations UpcomingReservations,
	resources ResourceReader,
	logger Logger,
) *UseCase {
	return &UseCase{
		clients:      clientFinder,
		reservations: reservations,
		resources:    resources,
		logger:       logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	client, err := uc.clients.GetByPhone(ctx, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidPhone):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, ErrClientNotFound):
			uc.logger.Warn("AgendaSummary: no client for phone %s", req.Phone)
			return nil, err
		}
		return nil, fmt.Errorf("%w: get client: %v", ErrInternal, err)
	}

	upcoming, err := uc.reservations.ListUpcomingByClient(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: list reservations: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(upcoming))
	for _, r := range upcoming {
		ids = append(ids, r.ResourceID)
	}
	names, err := uc.resources.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: load resources: %v", ErrInternal, err)
	}

	entries := make([]Entry, 0, len(upcoming))
	for _, r := range upcoming {
		name := fmt.Sprintf("#%d", r.ResourceID)
		if res, ok := names[r.ResourceID]; ok {
			name = res.Name
		}
		entries = append(entries, Entry{
			Reservation:  r,
			ResourceName: name,
			Line:         FormatLine(r, name),
		})
	}

	uc.logger.Info("AgendaSummary: client=%d has %d upcoming reservation(s)", client.ID, len(entries))
	return &Response{Client: client, Entries: entries}, nil
}

// FormatLine строка сводки: "20/03/2025 - 09:00, no campo: Campo 1"
func FormatLine(r *domain.Reservation, resourceName string) string {
	return fmt.Sprintf("%s - %s, no campo: %s", r.Date.Format(domain.DisplayDateFormat), r.Time, resourceName)
}
