package block_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FacilityBooking/internal/api/handlers"
	blockDay "github.com/m04kA/SMC-FacilityBooking/internal/usecase/block_day"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректная дата"
	msgInvalidInput         = "некорректные параметры блокировки дня"
	msgDayAlreadyOccupied   = "на выбранный день уже есть бронирования"
	msgConfigurationMissing = "не настроены часы работы"
	msgPartialFailure       = "блокировка дня прервана, изменения отменены"
)

type Handler struct {
	useCase BlockDayUseCase
	logger  Logger
}

func NewHandler(useCase BlockDayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/block-day
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/block-day - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/block-day - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockDay.ErrInvalidInput):
			h.logger.Warn("POST /reservations/block-day - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blockDay.ErrDayAlreadyOccupied):
			h.logger.Warn("POST /reservations/block-day - Day occupied: establishment_id=%d, resources=%d,%d",
				req.EstablishmentID, req.ResourceID, req.ResourceID2)
			handlers.RespondConflict(w, msgDayAlreadyOccupied)

		case errors.Is(err, blockDay.ErrConfigurationMissing):
			h.logger.Error("POST /reservations/block-day - Operating hours missing")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgConfigurationMissing)

		case errors.Is(err, blockDay.ErrPartialFailure):
			h.logger.Error("POST /reservations/block-day - Aborted: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgPartialFailure)

		default:
			h.logger.Error("POST /reservations/block-day - Failed to block day: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/block-day - Day blocked: date=%02d/%02d/%d, created=%d",
		req.Day, req.Month, req.Year, result.Created)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
