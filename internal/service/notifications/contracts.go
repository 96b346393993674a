package notifications

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// NotificationRepository интерфейс репозитория правил и истории уведомлений
type NotificationRepository interface {
	ListRules(ctx context.Context) ([]*domain.NotificationRule, error)
	GetRuleByID(ctx context.Context, id int64) (*domain.NotificationRule, error)
	SaveRule(ctx context.Context, rule *domain.NotificationRule) (*domain.NotificationRule, error)
	ListHistory(ctx context.Context) ([]*domain.NotificationRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
