package reschedule_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Reschedule(ctx context.Context, id int64, upd *domain.Reservation) (*domain.Reservation, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

const body = `{"clientId":7,"day":21,"month":3,"year":2025,"time":"15:00","establishmentId":1,"serviceTypeId":1,"resourceId":2}`

func serve(svc *MockService, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/reservations/5", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"reservationId": "5"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "rescheduled", wantStatus: http.StatusOK},
		{name: "target taken", err: fmt.Errorf("%w: resource 2", reservations.ErrWriteConflict), wantStatus: http.StatusConflict},
		{name: "missing", err: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			call := svc.On("Reschedule", mock.Anything, int64(5), mock.MatchedBy(func(r *domain.Reservation) bool {
				return r.ResourceID == 2 && r.Time.String() == "15:00" && r.Day() == 21
			}))
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&domain.Reservation{ID: 5, ResourceID: 2, ClientID: 7}, nil)
			}

			rec := serve(svc, body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandle_InvalidFields(t *testing.T) {
	svc := new(MockService)

	rec := serve(svc, `{"clientId":0,"day":21,"month":3,"year":2025,"time":"15:00","establishmentId":1,"serviceTypeId":1,"resourceId":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything, mock.Anything)
}
