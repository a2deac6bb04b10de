package agenda_summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	clientRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	resourceRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/resource"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/clients"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBooking/pkg/clock"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/txmanager"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

func TestExecute_UpcomingOnly(t *testing.T) {
	db := storagetest.NewDB(t)
	clientID := storagetest.InsertClient(t, db, "ana", "11999990000", true)
	field1 := storagetest.InsertResource(t, db, "Campo 1")
	field2 := storagetest.InsertResource(t, db, "Campo 2")

	clientsRepo := clientRepo.NewRepository(db)
	writer := reservations.NewService(
		reservationRepo.NewRepository(db),
		clientsRepo,
		nil,
		txmanager.NewTransactionManager(db),
		&clock.Fixed{T: time.Date(2025, 3, 18, 10, 0, 0, 0, time.UTC)},
		2,
		nil,
		logger.Nop(),
	)

	ctx := context.Background()
	for _, r := range []struct {
		day      int
		tm       string
		resource int64
	}{
		{day: 10, tm: "09:00", resource: field1},
		{day: 21, tm: "18:00", resource: field2},
		{day: 20, tm: "09:00", resource: field1},
	} {
		date, err := domain.NewDate(r.day, 3, 2025)
		require.NoError(t, err)
		_, err = writer.Create(ctx, &domain.Reservation{
			Date:            date,
			Time:            types.MustTimeString(r.tm),
			EstablishmentID: 1,
			ServiceTypeID:   1,
			ResourceID:      r.resource,
			ClientID:        clientID,
		})
		require.NoError(t, err)
	}

	uc := NewUseCase(
		clients.NewService(clientsRepo, logger.Nop()),
		writer,
		resourceRepo.NewRepository(db),
		logger.Nop(),
	)

	resp, err := uc.Execute(ctx, &Request{Phone: "11999990000"})
	require.NoError(t, err)
	assert.Equal(t, clientID, resp.Client.ID)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, "20/03/2025 - 09:00, no campo: Campo 1", resp.Entries[0].Line)
	assert.Equal(t, "21/03/2025 - 18:00, no campo: Campo 2", resp.Entries[1].Line)
}

func TestExecute_PhoneErrors(t *testing.T) {
	db := storagetest.NewDB(t)
	clientsRepo := clientRepo.NewRepository(db)
	uc := NewUseCase(
		clients.NewService(clientsRepo, logger.Nop()),
		nil,
		resourceRepo.NewRepository(db),
		logger.Nop(),
	)

	_, err := uc.Execute(context.Background(), &Request{Phone: "123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Phone: "11999990000"})
	assert.ErrorIs(t, err, ErrClientNotFound)
}
