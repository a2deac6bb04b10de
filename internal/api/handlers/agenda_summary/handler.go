package agenda_summary

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	agendaSummary "github.com/m04kA/SMC-FacilityBooking/internal/usecase/agenda_summary"
)

const (
	msgInvalidPhone   = "некорректный номер телефона, ожидается 11 цифр"
	msgClientNotFound = "клиент не найден"
)

type Handler struct {
	useCase AgendaSummaryUseCase
	logger  Logger
}

func NewHandler(useCase AgendaSummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/by-phone/{phone}/agenda
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := mux.Vars(r)["phone"]

	result, err := h.useCase.Execute(r.Context(), &agendaSummary.Request{Phone: phone})
	if err != nil {
		switch {
		case errors.Is(err, agendaSummary.ErrInvalidInput):
			h.logger.Warn("GET /clients/by-phone/{phone}/agenda - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, agendaSummary.ErrClientNotFound):
			h.logger.Warn("GET /clients/by-phone/{phone}/agenda - Client not found")
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("GET /clients/by-phone/{phone}/agenda - Failed to build agenda: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
