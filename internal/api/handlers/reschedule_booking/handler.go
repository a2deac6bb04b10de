package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidFields        = "некорректные поля бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgWriteConflict        = "ресурс уже занят на выбранное время"
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

// Handle PUT /api/v1/reservations/{reservationId}
// Доступно только администратору (проверяется middleware)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/%d - Invalid request body: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	upd, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /reservations/%d - Invalid fields: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	res, err := h.service.Reschedule(r.Context(), reservationID, upd)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrWriteConflict):
			h.logger.Warn("PUT /reservations/%d - Target slot taken: resource_id=%d, time=%s",
				reservationID, req.ResourceID, req.Time)
			handlers.RespondConflict(w, msgWriteConflict)

		default:
			h.logger.Error("PUT /reservations/%d - Failed to reschedule: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/%d - Reservation rescheduled", reservationID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(res))
}
