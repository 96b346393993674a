package get_regular_slots

import (
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/timeslots/regular
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRegular(r.Context())
	if err != nil {
		h.logger.Error("GET /timeslots/regular - Failed to list slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /timeslots/regular - Retrieved %d slots", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
