package hours

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	hoursRepo "github.com/m04kA/SMC-FacilityBooking/internal/infra/storage/hours"
	"github.com/m04kA/SMC-FacilityBooking/pkg/logger"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

type MockHoursRepository struct {
	mock.Mock
}

func (m *MockHoursRepository) Get(ctx context.Context, id int64) (*domain.OperatingHours, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperatingHours), args.Error(1)
}

func (m *MockHoursRepository) Update(ctx context.Context, h *domain.OperatingHours) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func tr(opening, closing string) domain.TimeRange {
	return domain.TimeRange{Opening: types.MustTimeString(opening), Closing: types.MustTimeString(closing)}
}

func validHours() *domain.OperatingHours {
	return &domain.OperatingHours{
		ID:       1,
		Weekday:  tr("08:00", "17:00"),
		Saturday: tr("08:00", "12:00"),
		Lunch:    tr("12:00", "13:00"),
	}
}

func TestService_HoursFor(t *testing.T) {
	repo := new(MockHoursRepository)
	repo.On("Get", mock.Anything, int64(1)).Return(validHours(), nil)
	svc := NewService(repo, 1, logger.Nop())

	weekday, err := svc.HoursFor(context.Background(), domain.WeekdayRegular)
	require.NoError(t, err)
	assert.Equal(t, "08:00", weekday.Opening.String())
	assert.Equal(t, "17:00", weekday.Closing.String())

	saturday, err := svc.HoursFor(context.Background(), domain.WeekdaySaturday)
	require.NoError(t, err)
	assert.Equal(t, "12:00", saturday.Closing.String())
}

func TestService_HoursFor_Missing(t *testing.T) {
	repo := new(MockHoursRepository)
	repo.On("Get", mock.Anything, int64(1)).Return(nil, hoursRepo.ErrHoursNotFound)
	svc := NewService(repo, 1, logger.Nop())

	_, err := svc.HoursFor(context.Background(), domain.WeekdayRegular)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
}

func TestService_HoursFor_StoreFailure(t *testing.T) {
	repo := new(MockHoursRepository)
	repo.On("Get", mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))
	svc := NewService(repo, 1, logger.Nop())

	_, err := svc.HoursFor(context.Background(), domain.WeekdayRegular)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Update_RejectsInvalidBeforeWrite(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(h *domain.OperatingHours)
	}{
		{name: "weekday inverted", mutate: func(h *domain.OperatingHours) { h.Weekday = tr("18:00", "08:00") }},
		{name: "weekday equal", mutate: func(h *domain.OperatingHours) { h.Weekday = tr("08:00", "08:00") }},
		{name: "saturday inverted", mutate: func(h *domain.OperatingHours) { h.Saturday = tr("13:00", "12:59") }},
		{name: "lunch inverted", mutate: func(h *domain.OperatingHours) { h.Lunch = tr("13:00", "12:00") }},
		{name: "lunch before opening", mutate: func(h *domain.OperatingHours) { h.Lunch = tr("07:00", "09:00") }},
		{name: "lunch after closing", mutate: func(h *domain.OperatingHours) { h.Lunch = tr("16:00", "17:00") }},
		{name: "missing closing", mutate: func(h *domain.OperatingHours) { h.Saturday.Closing = types.TimeString{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockHoursRepository)
			svc := NewService(repo, 1, logger.Nop())

			h := validHours()
			tt.mutate(h)

			_, err := svc.Update(context.Background(), h)
			assert.ErrorIs(t, err, ErrInvalidTimeRange)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_Persists(t *testing.T) {
	repo := new(MockHoursRepository)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(h *domain.OperatingHours) bool {
		return h.ID == 7 && h.Weekday.Closing.String() == "22:00"
	})).Return(nil)
	svc := NewService(repo, 7, logger.Nop())

	h := validHours()
	h.ID = 0
	h.Weekday = tr("07:00", "22:00")

	updated, err := svc.Update(context.Background(), h)
	require.NoError(t, err)
	assert.Equal(t, int64(7), updated.ID)
	repo.AssertExpectations(t)
}
