package appointments

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error)
}

// NotificationRepository интерфейс репозитория правил и истории уведомлений
type NotificationRepository interface {
	GetEnabledRulesByEvent(ctx context.Context, event domain.NotificationEvent) ([]*domain.NotificationRule, error)
	AppendRecord(ctx context.Context, record *domain.NotificationRecord) (*domain.NotificationRecord, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
