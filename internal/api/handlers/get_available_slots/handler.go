package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-FacilityBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidResourceID    = "некорректный ID ресурса"
	msgInvalidDate          = "некорректная дата, ожидаются параметры day, month, year"
	msgInvalidInput         = "некорректные параметры запроса"
	msgConfigurationMissing = "не настроены часы работы"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/available-slots?day=&month=&year=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathInt64(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/available-slots - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	date, err := handlers.QueryDate(r)
	if err != nil {
		h.logger.Warn("GET /resources/%d/available-slots - Invalid date: %v", resourceID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ResourceID: resourceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrConfigurationMissing):
			h.logger.Error("GET /resources/%d/available-slots - Operating hours missing", resourceID)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgConfigurationMissing)

		default:
			h.logger.Error("GET /resources/%d/available-slots - Failed to get slots: %v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
