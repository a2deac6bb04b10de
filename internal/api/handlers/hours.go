package handlers

import (
	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// TimeRangeDTO интервал работы "HH:MM"-"HH:MM"
type TimeRangeDTO struct {
	Opening types.TimeString `json:"opening"`
	Closing types.TimeString `json:"closing"`
}

// OperatingHoursDTO часы работы в запросах и ответах API
type OperatingHoursDTO struct {
	Weekday  TimeRangeDTO `json:"weekday"`
	Saturday TimeRangeDTO `json:"saturday"`
	Lunch    TimeRangeDTO `json:"lunch"`
}

func FromOperatingHours(h *domain.OperatingHours) OperatingHoursDTO {
	return OperatingHoursDTO{
		Weekday:  TimeRangeDTO(h.Weekday),
		Saturday: TimeRangeDTO(h.Saturday),
		Lunch:    TimeRangeDTO(h.Lunch),
	}
}

func (d OperatingHoursDTO) ToDomain() *domain.OperatingHours {
	return &domain.OperatingHours{
		Weekday:  domain.TimeRange(d.Weekday),
		Saturday: domain.TimeRange(d.Saturday),
		Lunch:    domain.TimeRange(d.Lunch),
	}
}
