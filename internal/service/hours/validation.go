package hours

import (
	"fmt"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Validate проверяет согласованность часов работы:
// открытие < закрытия в будни и в субботу, открытие < начало обеда < конец обеда < закрытие
func Validate(h *domain.OperatingHours) error {
	pairs := []struct {
		name string
		r    domain.TimeRange
	}{
		{name: "weekday", r: h.Weekday},
		{name: "saturday", r: h.Saturday},
		{name: "lunch", r: h.Lunch},
	}

	for _, p := range pairs {
		if p.r.Opening.IsZero() || p.r.Closing.IsZero() {
			return fmt.Errorf("%w: %s times are required", ErrInvalidTimeRange, p.name)
		}
		if err := p.r.Opening.Validate(); err != nil {
			return fmt.Errorf("%w: %s opening: %v", ErrInvalidTimeRange, p.name, err)
		}
		if err := p.r.Closing.Validate(); err != nil {
			return fmt.Errorf("%w: %s closing: %v", ErrInvalidTimeRange, p.name, err)
		}
		if !p.r.IsValid() {
			return fmt.Errorf("%w: %s opening %s must precede closing %s",
				ErrInvalidTimeRange, p.name, p.r.Opening, p.r.Closing)
		}
	}

	if !h.Weekday.Opening.IsBefore(h.Lunch.Opening) || !h.Lunch.Closing.IsBefore(h.Weekday.Closing) {
		return fmt.Errorf("%w: lunch %s-%s must lie inside working hours %s-%s",
			ErrInvalidTimeRange, h.Lunch.Opening, h.Lunch.Closing, h.Weekday.Opening, h.Weekday.Closing)
	}

	return nil
}
