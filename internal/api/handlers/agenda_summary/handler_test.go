package agenda_summary

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

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	agendaSummary "github.com/m04kA/SMC-FacilityBooking/internal/usecase/agenda_summary"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *agendaSummary.Request) (*agendaSummary.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agendaSummary.Response), args.Error(1)
}

func serve(uc *MockUseCase, phone string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/by-phone/"+phone+"/agenda", nil)
	req = mux.SetURLVars(req, map[string]string{"phone": phone})
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, req)
	return rec
}

func agenda() *agendaSummary.Response {
	date, _ := domain.NewDate(20, 3, 2025)
	return &agendaSummary.Response{
		Client: &domain.Client{ID: 7, Name: "ana", Phone: "11999990000"},
		Entries: []agendaSummary.Entry{{
			Reservation:  &domain.Reservation{ID: 1, Date: date, Time: types.MustTimeString("09:00"), ResourceID: 2, ClientID: 7},
			ResourceName: "Campo 2",
			Line:         "20/03/2025 - 09:00, no campo: Campo 2",
		}},
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		result     *agendaSummary.Response
		err        error
		wantStatus int
	}{
		{name: "found", phone: "11999990000", result: agenda(), wantStatus: http.StatusOK},
		{name: "short phone", phone: "123", err: agendaSummary.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown phone", phone: "11911110000", err: agendaSummary.ErrClientNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", phone: "11999990000", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, &agendaSummary.Request{Phone: tt.phone}).Return(tt.result, tt.err)

			rec := serve(uc, tt.phone)

			assert.Equal(t, tt.wantStatus, rec.Code)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandle_Body(t *testing.T) {
	uc := new(MockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(agenda(), nil)

	rec := serve(uc, "11999990000")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AgendaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ClientID)
	require.Len(t, body.Entries, 1)
	assert.Equal(t, "20/03/2025 - 09:00, no campo: Campo 2", body.Entries[0].Line)
	assert.Equal(t, "Campo 2", body.Entries[0].ResourceName)
}
