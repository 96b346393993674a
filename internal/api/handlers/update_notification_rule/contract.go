package update_notification_rule

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	UpdateRule(ctx context.Context, req *models.UpdateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
