package update_operating_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/hours"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTimeRange     = "некорректные часы работы: открытие должно быть раньше закрытия, обед внутри рабочего дня"
	msgConfigurationMissing = "часы работы не настроены"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/operating-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req handlers.OperatingHoursDTO
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /operating-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrInvalidTimeRange):
			h.logger.Warn("PUT /operating-hours - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, hours.ErrConfigurationMissing):
			h.logger.Warn("PUT /operating-hours - Hours record missing")
			handlers.RespondNotFound(w, msgConfigurationMissing)

		default:
			h.logger.Error("PUT /operating-hours - Failed to update hours: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /operating-hours - Hours updated")
	handlers.RespondJSON(w, http.StatusOK, handlers.FromOperatingHours(result))
}
