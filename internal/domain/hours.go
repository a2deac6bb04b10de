package domain

import (
	"time"

	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// WeekdayKind тип дня для выбора расписания
type WeekdayKind string

const (
	WeekdayRegular  WeekdayKind = "weekday"
	WeekdaySaturday WeekdayKind = "saturday"
)

// WeekdayKindOf определяет тип дня по дате
func WeekdayKindOf(date time.Time) WeekdayKind {
	if date.Weekday() == time.Saturday {
		return WeekdaySaturday
	}
	return WeekdayRegular
}

func (k WeekdayKind) IsValid() bool {
	return k == WeekdayRegular || k == WeekdaySaturday
}

// TimeRange полуоткрытый интервал [Opening, Closing)
type TimeRange struct {
	Opening types.TimeString
	Closing types.TimeString
}

// IsValid открытие строго раньше закрытия
func (r TimeRange) IsValid() bool {
	return r.Opening.IsBefore(r.Closing)
}

// OperatingHours единственная запись с расписанием работы
type OperatingHours struct {
	ID       int64
	Weekday  TimeRange
	Saturday TimeRange
	Lunch    TimeRange
}

// For возвращает расписание для типа дня
func (h *OperatingHours) For(kind WeekdayKind) TimeRange {
	if kind == WeekdaySaturday {
		return h.Saturday
	}
	return h.Weekday
}
