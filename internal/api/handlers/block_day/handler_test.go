package block_day

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	blockDay "github.com/m04kA/SMC-FacilityBooking/internal/usecase/block_day"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *blockDay.Request) (*blockDay.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blockDay.Response), args.Error(1)
}

const body = `{"day":22,"month":3,"year":2025,"establishmentId":1,"serviceTypeId":2,"resourceId":1,"resourceId2":2}`

func serve(uc *MockUseCase, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations/block-day", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Blocked(t *testing.T) {
	uc := new(MockUseCase)
	date, _ := domain.NewDate(22, 3, 2025)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *blockDay.Request) bool {
		return r.ClientID == 0 && r.Weekday == "" && r.ResourceID2 == 2 && r.Date.Equal(date)
	})).Return(&blockDay.Response{
		Date:    date,
		Weekday: domain.WeekdaySaturday,
		Slots:   []types.TimeString{types.MustTimeString("08:00"), types.MustTimeString("09:00")},
		Created: 4,
	}, nil)

	rec := serve(uc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp BlockDayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "saturday", resp.Weekday)
	assert.Equal(t, []string{"08:00", "09:00"}, resp.Slots)
	assert.Equal(t, 4, resp.Created)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "occupied", err: blockDay.ErrDayAlreadyOccupied, wantStatus: http.StatusConflict, wantMsg: msgDayAlreadyOccupied},
		{name: "partial failure", err: fmt.Errorf("%w: slot 10:00", blockDay.ErrPartialFailure), wantStatus: http.StatusInternalServerError, wantMsg: msgPartialFailure},
		{name: "no hours", err: blockDay.ErrConfigurationMissing, wantStatus: http.StatusServiceUnavailable, wantMsg: msgConfigurationMissing},
		{name: "invalid", err: blockDay.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(uc, body)

			require.Equal(t, tt.wantStatus, rec.Code)
			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := new(MockUseCase)

	rec := serve(uc, `{"day":30,"month":2,"year":2025,"resourceId":1,"resourceId2":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
