package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// dropStarted убирает слоты, которые на сегодняшнюю дату уже начались.
// Для прошедших дат возвращает пустой список, для будущих - все слоты
func dropStarted(slots []types.TimeString, date time.Time, now time.Time) []types.TimeString {
	if isDateInPast(date, now) {
		return []types.TimeString{}
	}
	if !isSameDay(date, now) {
		return slots
	}

	current := types.NewTimeString(now)
	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if slot.IsAfter(current) {
			result = append(result, slot)
		}
	}
	return result
}

// isSameDay сравнивает календарные даты
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
