package slots

import (
	"github.com/m04kA/SMC-FacilityBooking/pkg/types"
)

// Generate возвращает начала слотов в полуоткрытом интервале [opening, closing) с шагом stepMinutes
// Слот, начало которого совпадает с закрытием или позже, не включается.
// Для opening >= closing или неположительного шага возвращает пустой список
func Generate(opening, closing types.TimeString, stepMinutes int) []types.TimeString {
	result := make([]types.TimeString, 0)
	if stepMinutes <= 0 || !opening.IsBefore(closing) {
		return result
	}

	for minute := opening.Minutes(); minute < closing.Minutes(); minute += stepMinutes {
		slot, err := types.NewTimeStringFromMinutes(minute)
		if err != nil {
			break
		}
		result = append(result, slot)
	}

	return result
}

// Free исключает из сетки занятые слоты, сохраняя порядок
func Free(grid []types.TimeString, occupied []types.TimeString) []types.TimeString {
	taken := make(map[int]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t.Minutes()] = struct{}{}
	}

	result := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if _, ok := taken[slot.Minutes()]; !ok {
			result = append(result, slot)
		}
	}
	return result
}
