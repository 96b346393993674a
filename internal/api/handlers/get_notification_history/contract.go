package get_notification_history

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications/models"
)

type NotificationService interface {
	ListHistory(ctx context.Context) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
