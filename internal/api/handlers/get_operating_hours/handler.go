package get_operating_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/hours"
)

const msgConfigurationMissing = "часы работы не настроены"

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

// Handle GET /api/v1/operating-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, hours.ErrConfigurationMissing) {
			h.logger.Warn("GET /operating-hours - Hours not configured")
			handlers.RespondNotFound(w, msgConfigurationMissing)
			return
		}
		h.logger.Error("GET /operating-hours - Failed to get hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromOperatingHours(result))
}
