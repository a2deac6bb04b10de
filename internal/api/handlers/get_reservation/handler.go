package get_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgForeignReservation   = "доступ к чужому бронированию запрещен"
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

// Handle GET /api/v1/reservations/{reservationId}
// Клиент видит только свои бронирования, администратор любые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	res, err := h.service.Get(r.Context(), reservationID)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("GET /reservations/%d - Failed to get reservation: %v", reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	if !middleware.GetRole(r.Context()).IsAdministrator() {
		if userID, _ := middleware.GetUserID(r.Context()); userID != res.ClientID {
			h.logger.Warn("GET /reservations/%d - Access denied for user %d", reservationID, userID)
			handlers.RespondForbidden(w, msgForeignReservation)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(res))
}
