package save_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	saveTimeSlot "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/save_time_slot"
)

const (
	msgInvalidSlotID       = "некорректный ID слота"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidTimeFormat   = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange    = "время конца должно быть позже времени начала"
	msgInvalidData         = "некорректные данные слота"
	msgSlotConflict        = "слот пересекается с существующим"
	msgKindMismatch        = "ID занят слотом другого вида"
	msgOutsideWorkingHours = "слот выходит за рабочие часы студии"
)

type Handler struct {
	useCase SaveTimeSlotUseCase
	logger  Logger
}

func NewHandler(useCase SaveTimeSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/timeslots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/timeslots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req SaveTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/timeslots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(slotID)
	if err != nil {
		h.logger.Warn("PUT /admin/timeslots/{id} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidFormat):
			h.logger.Warn("PUT /admin/timeslots/{id} - Invalid time format: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeFormat)

		case errors.Is(err, domain.ErrInvalidRange):
			h.logger.Warn("PUT /admin/timeslots/{id} - Invalid time range: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, saveTimeSlot.ErrSlotConflict):
			h.logger.Warn("PUT /admin/timeslots/{id} - Slot conflict: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgSlotConflict)

		case errors.Is(err, saveTimeSlot.ErrSlotKindMismatch):
			h.logger.Warn("PUT /admin/timeslots/{id} - Kind mismatch: slot_id=%d", slotID)
			handlers.RespondConflict(w, msgKindMismatch)

		case errors.Is(err, saveTimeSlot.ErrOutsideWorkingHours):
			h.logger.Warn("PUT /admin/timeslots/{id} - Outside working hours: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, saveTimeSlot.ErrInvalidInput):
			h.logger.Warn("PUT /admin/timeslots/{id} - Invalid data: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/timeslots/{id} - Failed to save slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /admin/timeslots/{id} - Slot saved: slot_id=%d, kind=%s", result.ID, result.Kind)
	handlers.RespondJSON(w, http.StatusOK, response)
}
