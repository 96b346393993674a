package get_notification_history

import (
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/notifications/history
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListHistory(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/notifications/history - Failed to list history: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/notifications/history - Retrieved %d records", len(result.Records))
	handlers.RespondJSON(w, http.StatusOK, result)
}
