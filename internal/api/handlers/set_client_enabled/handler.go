package set_client_enabled

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/clients"
)

const (
	msgInvalidClientID    = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса, ожидается поле enabled"
	msgClientNotFound     = "клиент не найден"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/clients/{clientId}/enabled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathInt64(r, "clientId")
	if err != nil {
		h.logger.Warn("PATCH /clients/{id}/enabled - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	var req SetEnabledRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.Enabled == nil {
		h.logger.Warn("PATCH /clients/%d/enabled - Invalid request body: %v", clientID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.SetEnabled(r.Context(), clientID, *req.Enabled)
	if err != nil {
		if errors.Is(err, clients.ErrClientNotFound) {
			h.logger.Warn("PATCH /clients/%d/enabled - Client not found", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)
			return
		}
		h.logger.Error("PATCH /clients/%d/enabled - Failed to update client: %v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /clients/%d/enabled - enabled=%t", clientID, client.Enabled)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(client))
}
