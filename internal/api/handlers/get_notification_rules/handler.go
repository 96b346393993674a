package get_notification_rules

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

// Handle GET /api/v1/admin/notifications/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRules(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/notifications/rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/notifications/rules - Retrieved %d rules", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
