package delete_time_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/timeslots"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgSlotNotFound  = "слот не найден"
)

type Handler struct {
	service TimeSlotService
	logger  Logger
}

func NewHandler(service TimeSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/timeslots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/timeslots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		if errors.Is(err, timeslots.ErrSlotNotFound) {
			h.logger.Warn("DELETE /admin/timeslots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)
			return
		}
		h.logger.Error("DELETE /admin/timeslots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/timeslots/{id} - Slot deleted: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
