package list_reservations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListByEstablishmentDay(ctx context.Context, establishmentID int64, date time.Time) ([]*domain.Reservation, error) {
	args := m.Called(ctx, establishmentID, date)
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockService) ListByResource(ctx context.Context, resourceID int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, resourceID)
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockService) ListByClient(ctx context.Context, clientID int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func (m *MockService) ListUpcomingByClient(ctx context.Context, clientID int64) ([]*domain.Reservation, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).([]*domain.Reservation), args.Error(1)
}

func sample() []*domain.Reservation {
	date, _ := domain.NewDate(20, 3, 2025)
	return []*domain.Reservation{
		{ID: 1, Date: date, Time: types.MustTimeString("09:00"), ResourceID: 1, ClientID: 7},
		{ID: 2, Date: date, Time: types.MustTimeString("10:00"), ResourceID: 2, ClientID: 8},
	}
}

func TestHandleByEstablishment(t *testing.T) {
	svc := new(MockService)
	date, _ := domain.NewDate(20, 3, 2025)
	svc.On("ListByEstablishmentDay", mock.Anything, int64(3), date).Return(sample(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/establishments/3/reservations?day=20&month=3&year=2025", nil)
	req = mux.SetURLVars(req, map[string]string{"establishmentId": "3"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).HandleByEstablishment(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []handlers.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	svc.AssertExpectations(t)
}

func TestHandleByEstablishment_MissingDate(t *testing.T) {
	svc := new(MockService)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/establishments/3/reservations?day=20", nil)
	req = mux.SetURLVars(req, map[string]string{"establishmentId": "3"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).HandleByEstablishment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleByClient(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		userID     int64
		role       domain.Role
		method     string
		wantStatus int
	}{
		{name: "own reservations", url: "/api/v1/clients/7/reservations", userID: 7, role: domain.RoleClient, method: "ListByClient", wantStatus: http.StatusOK},
		{name: "upcoming", url: "/api/v1/clients/7/reservations?upcoming=true", userID: 7, role: domain.RoleClient, method: "ListUpcomingByClient", wantStatus: http.StatusOK},
		{name: "admin sees any client", url: "/api/v1/clients/7/reservations", userID: 1, role: domain.RoleAdministrator, method: "ListByClient", wantStatus: http.StatusOK},
		{name: "foreign client", url: "/api/v1/clients/7/reservations", userID: 8, role: domain.RoleClient, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.method != "" {
				svc.On(tt.method, mock.Anything, int64(7)).Return(sample(), nil)
			}

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			req = mux.SetURLVars(req, map[string]string{"clientId": "7"})
			req = req.WithContext(middleware.WithIdentity(req.Context(), tt.userID, tt.role))
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.Nop()).HandleByClient(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
