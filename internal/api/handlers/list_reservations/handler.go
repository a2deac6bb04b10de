package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgInvalidResourceID      = "некорректный ID ресурса"
	msgInvalidClientID        = "некорректный ID клиента"
	msgInvalidDate            = "некорректная дата, ожидаются параметры day, month, year"
	msgForeignClient          = "клиент может просматривать только свои бронирования"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleByEstablishment GET /api/v1/establishments/{establishmentId}/reservations?day=&month=&year=
func (h *Handler) HandleByEstablishment(w http.ResponseWriter, r *http.Request) {
	establishmentID, err := handlers.PathInt64(r, "establishmentId")
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/reservations - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	date, err := handlers.QueryDate(r)
	if err != nil {
		h.logger.Warn("GET /establishments/%d/reservations - Invalid date: %v", establishmentID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	list, err := h.service.ListByEstablishmentDay(r.Context(), establishmentID, date)
	if err != nil {
		h.logger.Error("GET /establishments/%d/reservations - Failed to list: %v", establishmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservations(list))
}

// HandleByResource GET /api/v1/resources/{resourceId}/reservations
func (h *Handler) HandleByResource(w http.ResponseWriter, r *http.Request) {
	resourceID, err := handlers.PathInt64(r, "resourceId")
	if err != nil {
		h.logger.Warn("GET /resources/{id}/reservations - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	list, err := h.service.ListByResource(r.Context(), resourceID)
	if err != nil {
		h.logger.Error("GET /resources/%d/reservations - Failed to list: %v", resourceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservations(list))
}

// HandleByClient GET /api/v1/clients/{clientId}/reservations?upcoming=true
func (h *Handler) HandleByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := handlers.PathInt64(r, "clientId")
	if err != nil {
		h.logger.Warn("GET /clients/{id}/reservations - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	if !middleware.GetRole(r.Context()).IsAdministrator() {
		if userID, _ := middleware.GetUserID(r.Context()); userID != clientID {
			h.logger.Warn("GET /clients/%d/reservations - Access denied for user %d", clientID, userID)
			handlers.RespondForbidden(w, msgForeignClient)
			return
		}
	}

	list := h.service.ListByClient
	if r.URL.Query().Get("upcoming") == "true" {
		list = h.service.ListUpcomingByClient
	}

	result, err := list(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /clients/%d/reservations - Failed to list: %v", clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservations(result))
}
