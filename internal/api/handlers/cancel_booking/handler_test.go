package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	cancelBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cancelBooking.Response), args.Error(1)
}

func serve(uc *MockUseCase, id string, role domain.Role) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reservations/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"reservationId": id})
	req = req.WithContext(middleware.WithIdentity(req.Context(), 7, role))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	date, _ := domain.NewDate(25, 3, 2025)

	tests := []struct {
		name       string
		id         string
		role       domain.Role
		result     *cancelBooking.Response
		err        error
		wantStatus int
	}{
		{
			name:       "cancelled by admin",
			id:         "5",
			role:       domain.RoleAdministrator,
			result:     &cancelBooking.Response{Reservation: &domain.Reservation{ID: 5, Date: date}},
			wantStatus: http.StatusOK,
		},
		{name: "window violation", id: "5", role: domain.RoleClient, err: cancelBooking.ErrCancellationWindowViolation, wantStatus: http.StatusForbidden},
		{name: "other client", id: "5", role: domain.RoleClient, err: cancelBooking.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "not found", id: "9", role: domain.RoleClient, err: cancelBooking.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", id: "5", role: domain.RoleClient, err: cancelBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *cancelBooking.Request) bool {
				return r.Role == tt.role && r.ClientID == 7
			})).Return(tt.result, tt.err)

			rec := serve(uc, tt.id, tt.role)

			assert.Equal(t, tt.wantStatus, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandle_InvalidID(t *testing.T) {
	uc := new(MockUseCase)

	rec := serve(uc, "abc", domain.RoleClient)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
