package update_notification_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications/models"
)

const (
	msgInvalidRuleID      = "некорректный ID правила"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRuleNotFound       = "правило не найдено"
	msgInvalidData        = "некорректные данные правила"
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

// Handle PUT /api/v1/admin/notifications/rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/notifications/rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/notifications/rules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.ID = ruleID

	result, err := h.service.UpdateRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrRuleNotFound):
			h.logger.Warn("PUT /admin/notifications/rules/{id} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, notifications.ErrInvalidInput):
			h.logger.Warn("PUT /admin/notifications/rules/{id} - Invalid data: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/notifications/rules/{id} - Failed to update rule: rule_id=%d, error=%v",
				ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/notifications/rules/{id} - Rule updated: rule_id=%d, enabled=%t",
		result.ID, result.Enabled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
