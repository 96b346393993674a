package get_notification_rules

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	ListRules(ctx context.Context) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
