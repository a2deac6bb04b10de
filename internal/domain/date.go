package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate дата не существует в календаре (31 февраля и т.п.)
var ErrInvalidDate = errors.New("domain: invalid calendar date")

// NewDate собирает календарную дату из дня, месяца и года
// Переполнение (32.01 -> 01.02) считается ошибкой, а не нормализуется
func NewDate(day, month, year int) (time.Time, error) {
	if month < 1 || month > 12 || day < 1 || year < 1 {
		return time.Time{}, fmt.Errorf("%w: %02d.%02d.%04d", ErrInvalidDate, day, month, year)
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %02d.%02d.%04d", ErrInvalidDate, day, month, year)
	}
	return date, nil
}

// DateOf отбрасывает время, оставляя календарную дату в UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// InLocation переносит календарную дату в полночь указанной зоны
func InLocation(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
