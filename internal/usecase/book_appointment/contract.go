package book_appointment

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// NotificationRepository интерфейс репозитория правил и истории уведомлений
type NotificationRepository interface {
	GetEnabledRulesByEvent(ctx context.Context, event domain.NotificationEvent) ([]*domain.NotificationRule, error)
	AppendRecord(ctx context.Context, record *domain.NotificationRecord) (*domain.NotificationRecord, error)
}

// SettingsRepository интерфейс репозитория настроек студии
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.StudioSettings, error)
}

// AvailabilityChecker отдает актуальные слоты дня с учетом занятости.
// Используется для повторной проверки выбранного слота перед записью:
// между выбором и отправкой слот мог занять другой клиент.
type AvailabilityChecker interface {
	SlotsForDate(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
}

// FlowService интерфейс сервиса booking flow
type FlowService interface {
	Selection(ctx context.Context, flowID string) (*domain.Selection, error)
	Complete(ctx context.Context, flowID string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
