package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate(t *testing.T) {
	date, err := NewDate(29, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), date)

	_, err = NewDate(29, 2, 2025)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewDate(1, 13, 2025)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = NewDate(0, 1, 2025)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeekdayKindOf(t *testing.T) {
	saturday := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, WeekdaySaturday, WeekdayKindOf(saturday))
	assert.Equal(t, WeekdayRegular, WeekdayKindOf(monday))
}

func TestReservationDateParts(t *testing.T) {
	r := Reservation{Date: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 31, r.Day())
	assert.Equal(t, 12, r.Month())
	assert.Equal(t, 2025, r.Year())
}
