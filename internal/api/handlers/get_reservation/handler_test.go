package get_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func serve(svc *MockService, id string, userID int64, role domain.Role) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservations/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"reservationId": id})
	req = req.WithContext(middleware.WithIdentity(req.Context(), userID, role))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	date, _ := domain.NewDate(20, 3, 2025)
	owned := &domain.Reservation{ID: 5, Date: date, Time: types.MustTimeString("09:00"), ResourceID: 1, ClientID: 7}

	tests := []struct {
		name       string
		userID     int64
		role       domain.Role
		result     *domain.Reservation
		err        error
		wantStatus int
	}{
		{name: "owner", userID: 7, role: domain.RoleClient, result: owned, wantStatus: http.StatusOK},
		{name: "administrator", userID: 1, role: domain.RoleAdministrator, result: owned, wantStatus: http.StatusOK},
		{name: "other client", userID: 8, role: domain.RoleClient, result: owned, wantStatus: http.StatusForbidden},
		{name: "not found", userID: 7, role: domain.RoleClient, err: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", userID: 7, role: domain.RoleClient, err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			svc.On("Get", mock.Anything, int64(5)).Return(tt.result, tt.err)

			rec := serve(svc, "5", tt.userID, tt.role)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_Body(t *testing.T) {
	date, _ := domain.NewDate(20, 3, 2025)
	svc := new(MockService)
	svc.On("Get", mock.Anything, int64(5)).
		Return(&domain.Reservation{ID: 5, Date: date, Time: types.MustTimeString("09:00"), ResourceID: 2, ClientID: 7}, nil)

	rec := serve(svc, "5", 7, domain.RoleClient)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(5), body.ID)
	assert.Equal(t, 20, body.Day)
	assert.Equal(t, "09:00", body.Time)
	assert.Equal(t, int64(2), body.ResourceID)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := new(MockService)

	rec := serve(svc, "abc", 7, domain.RoleClient)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
