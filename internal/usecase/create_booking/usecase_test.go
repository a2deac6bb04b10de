package create_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	clientRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/client"
	reservationRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/clients"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/eligibility"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBooking/pkg/clock"
	"github.com/m04kA/SMC-FacilityBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/txmanager"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []*domain.Client
}

func (n *recordingNotifier) Notify(_ context.Context, _ domain.NotificationKind, _ *domain.Reservation, client *domain.Client) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, client)
}

type fixture struct {
	db       *dbmetrics.DB
	uc       *UseCase
	repo     *reservationRepo.Repository
	notifier *recordingNotifier
	system   int64
	client   int64
	blocked  int64
	field1   int64
	field2   int64
	field3   int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := storagetest.NewDB(t)
	clientRepository := clientRepo.NewRepository(db)
	repo := reservationRepo.NewRepository(db)

	f := &fixture{
		db:       db,
		repo:     repo,
		notifier: &recordingNotifier{},
		system:   storagetest.InsertClient(t, db, "system", "00000000000", true),
		client:   storagetest.InsertClient(t, db, "ana", "11999990000", true),
		blocked:  storagetest.InsertClient(t, db, "bia", "11988880000", false),
		field1:   storagetest.InsertResource(t, db, "Campo 1"),
		field2:   storagetest.InsertResource(t, db, "Campo 2"),
		field3:   storagetest.InsertResource(t, db, "Campo 3"),
	}

	writer := reservations.NewService(
		repo,
		clientRepository,
		nil,
		txmanager.NewTransactionManager(db),
		&clock.Fixed{T: time.Date(2025, 3, 18, 10, 0, 0, 0, time.UTC)},
		2,
		nil,
		logger.Nop(),
	)

	f.uc = NewUseCase(
		eligibility.NewChecker(repo, clientRepository, 2),
		clients.NewService(clientRepository, logger.Nop()),
		writer,
		f.notifier,
		txmanager.NewTransactionManager(db),
		f.system,
		nil,
		logger.Nop(),
	)
	return f
}

func (f *fixture) request(t *testing.T, role domain.Role, clientID, resourceID int64, tm string) *Request {
	t.Helper()
	date, err := domain.NewDate(20, 3, 2025)
	require.NoError(t, err)
	return &Request{
		Role:            role,
		ClientID:        clientID,
		Date:            date,
		Time:            types.MustTimeString(tm),
		EstablishmentID: 1,
		ServiceTypeID:   1,
		ResourceID:      resourceID,
	}
}

func (f *fixture) count(t *testing.T) int {
	t.Helper()
	n, err := f.repo.Count(context.Background(), domain.ReservationFilter{})
	require.NoError(t, err)
	return n
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request(t, domain.RoleClient, f.client, f.field1, "09:00"))
	require.NoError(t, err)
	assert.NotZero(t, resp.Reservation.ID)
	assert.Equal(t, f.client, resp.Reservation.ClientID)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "11999990000", f.notifier.sent[0].Phone)
}

func TestExecute_DailyLimitExceeded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, f.request(t, domain.RoleClient, f.client, f.field1, "09:00"))
	require.NoError(t, err)
	_, err = f.uc.Execute(ctx, f.request(t, domain.RoleClient, f.client, f.field2, "11:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(t, domain.RoleClient, f.client, f.field3, "15:00"))
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)
	assert.Equal(t, 2, f.count(t))
}

func TestExecute_SlotAlreadyTakenOnOtherResource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, f.request(t, domain.RoleClient, f.client, f.field1, "09:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(t, domain.RoleClient, f.client, f.field2, "09:00"))
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
}

func TestExecute_ClientBlockedBeforeWrite(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), f.request(t, domain.RoleClient, f.blocked, f.field1, "09:00"))
	assert.ErrorIs(t, err, ErrClientBlocked)
	assert.Zero(t, f.count(t))
	assert.Empty(t, f.notifier.sent)
}

func TestExecute_WriteConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, f.request(t, domain.RoleClient, f.client, f.field1, "09:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(t, domain.RoleAdministrator, 0, f.field1, "09:00"))
	assert.ErrorIs(t, err, ErrWriteConflict)
}

func TestExecute_AdministratorExempt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, tm := range []string{"09:00", "10:00", "11:00"} {
		resp, err := f.uc.Execute(ctx, f.request(t, domain.RoleAdministrator, 0, f.field1, tm))
		require.NoError(t, err)
		assert.Equal(t, f.system, resp.Reservation.ClientID)
	}

	// та же минута на другом ресурсе
	_, err := f.uc.Execute(ctx, f.request(t, domain.RoleAdministrator, 0, f.field2, "09:00"))
	require.NoError(t, err)

	// выключенный клиент от имени администратора
	_, err = f.uc.Execute(ctx, f.request(t, domain.RoleAdministrator, f.blocked, f.field3, "09:00"))
	require.NoError(t, err)

	assert.Equal(t, 5, f.count(t))
	// подтверждение получает только реальный клиент
	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, "11988880000", f.notifier.sent[0].Phone)
}

func TestExecute_AdministratorOnBehalfOfClient(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request(t, domain.RoleAdministrator, f.client, f.field1, "09:00"))
	require.NoError(t, err)
	assert.Equal(t, f.client, resp.Reservation.ClientID)

	require.Len(t, f.notifier.sent, 1)
	assert.Equal(t, f.client, f.notifier.sent[0].ID)
	assert.Equal(t, "11999990000", f.notifier.sent[0].Phone)
}

func TestExecute_AdministratorUnknownClient(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), f.request(t, domain.RoleAdministrator, 999, f.field1, "09:00"))
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.NotErrorIs(t, err, ErrInternal)
	assert.Zero(t, f.count(t))
}

func TestExecute_UnknownResource(t *testing.T) {
	f := newFixture(t)

	for _, role := range []domain.Role{domain.RoleClient, domain.RoleAdministrator} {
		_, err := f.uc.Execute(context.Background(), f.request(t, role, f.client, 999, "09:00"))
		assert.ErrorIs(t, err, ErrInvalidInput, role.String())
		assert.NotErrorIs(t, err, ErrInternal, role.String())
	}
	assert.Zero(t, f.count(t))
	assert.Empty(t, f.notifier.sent)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	f := newFixture(t)

	const workers = 8
	reqs := make([]*Request, workers)
	for i := range reqs {
		clientID := storagetest.InsertClient(t, f.db, fmt.Sprintf("c%d", i), fmt.Sprintf("119%08d", i), true)
		reqs[i] = f.request(t, domain.RoleClient, clientID, f.field1, "09:00")
	}

	errs := make([]error, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = f.uc.Execute(context.Background(), reqs[i])
		}(i)
	}
	close(start)
	wg.Wait()

	succeeded := 0
	for i, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.NotErrorIs(t, err, ErrInternal, "worker %d", i)
		assert.ErrorIs(t, err, ErrWriteConflict, "worker %d", i)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, f.count(t))
}

func TestExecute_ClientNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), f.request(t, domain.RoleClient, 999, f.field1, "09:00"))
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "client without id", modify: func(r *Request) { r.ClientID = 0 }},
		{name: "no resource", modify: func(r *Request) { r.ResourceID = 0 }},
		{name: "no establishment", modify: func(r *Request) { r.EstablishmentID = 0 }},
		{name: "no service type", modify: func(r *Request) { r.ServiceTypeID = 0 }},
		{name: "zero date", modify: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty time", modify: func(r *Request) { r.Time = types.TimeString{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request(t, domain.RoleClient, f.client, f.field1, "09:00")
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
	assert.Zero(t, f.count(t))
}
