package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	"github.com/m04kA/SMC-FacilityBooking/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-FacilityBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректная дата бронирования"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgForeignClient      = "клиент может бронировать только от своего имени"
	msgDailyLimit         = "достигнут лимит бронирований на этот день"
	msgSlotAlreadyTaken   = "у клиента уже есть бронирование на это время"
	msgClientBlocked      = "клиенту запрещено бронировать"
	msgClientNotFound     = "клиент не найден"
	msgWriteConflict      = "ресурс уже занят на выбранное время"
	msgInvalidInput       = "некорректные параметры бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role := middleware.GetRole(r.Context())

	// Клиент бронирует только за себя, пустой clientId берется из заголовка
	if !role.IsAdministrator() {
		userID, _ := middleware.GetUserID(r.Context())
		if req.ClientID == 0 {
			req.ClientID = userID
		}
		if req.ClientID != userID {
			h.logger.Warn("POST /reservations - Client %d tried to book for client %d", userID, req.ClientID)
			handlers.RespondForbidden(w, msgForeignClient)
			return
		}
	}

	useCaseReq, err := req.ToUseCaseRequest(role)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDailyLimitExceeded):
			h.logger.Warn("POST /reservations - Daily limit: client_id=%d", req.ClientID)
			handlers.RespondConflict(w, msgDailyLimit)

		case errors.Is(err, createBooking.ErrSlotAlreadyTaken):
			h.logger.Warn("POST /reservations - Client already holds slot: client_id=%d, time=%s", req.ClientID, req.Time)
			handlers.RespondConflict(w, msgSlotAlreadyTaken)

		case errors.Is(err, createBooking.ErrClientBlocked):
			h.logger.Warn("POST /reservations - Client blocked: client_id=%d", req.ClientID)
			handlers.RespondForbidden(w, msgClientBlocked)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /reservations - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrWriteConflict):
			h.logger.Warn("POST /reservations - Resource slot taken: resource_id=%d, time=%s", req.ResourceID, req.Time)
			handlers.RespondConflict(w, msgWriteConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, client_id=%d, resource_id=%d",
		result.Reservation.ID, result.Reservation.ClientID, result.Reservation.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromReservation(result.Reservation))
}
