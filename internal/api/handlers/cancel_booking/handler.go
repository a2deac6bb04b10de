package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	cancelBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/cancel_booking"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgReservationNotFound  = "бронирование не найдено"
	msgTooLateToCancel      = "срок отмены бронирования истек"
	msgNotOwner             = "нельзя отменить чужое бронирование"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathInt64(r, "reservationId")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	role := middleware.GetRole(r.Context())
	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{
		ReservationID: reservationID,
		Role:          role,
		ClientID:      userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/%d - Reservation not found", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, cancelBooking.ErrCancellationWindowViolation):
			h.logger.Warn("DELETE /reservations/%d - Too late to cancel", reservationID)
			handlers.RespondForbidden(w, msgTooLateToCancel)

		case errors.Is(err, cancelBooking.ErrForbidden):
			h.logger.Warn("DELETE /reservations/%d - Client %d is not the owner", reservationID, userID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		default:
			h.logger.Error("DELETE /reservations/%d - Failed to cancel: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/%d - Reservation cancelled by %s", reservationID, role)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromReservation(result.Reservation))
}
