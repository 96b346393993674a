package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/schedulefeed"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	IsEmpty(ctx context.Context) (bool, error)
	ListRegularByWeekday(ctx context.Context, weekday time.Weekday) ([]*domain.RegularSlot, error)
	ListSpecialByDate(ctx context.Context, date time.Time) ([]*domain.SpecialSlot, error)
	ReplaceAll(ctx context.Context, regular []*domain.RegularSlot, special []*domain.SpecialSlot) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetActiveByDate получает активные записи (pending/confirmed) на дату
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек студии
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.StudioSettings, error)
}

// ScheduleFeedClient интерфейс клиента календарного фида
type ScheduleFeedClient interface {
	FetchScheduleWithGracefulDegradation(ctx context.Context) (*schedulefeed.Schedule, error)
}

// FallbackProvider выдает резервный набор доступности, когда фид недоступен.
// Набор задается вызывающей стороной, а не зашивается в сетевой слой.
type FallbackProvider interface {
	DefaultDays(now time.Time) []domain.DaySlots
}

// FallbackFunc адаптер функции под FallbackProvider
type FallbackFunc func(now time.Time) []domain.DaySlots

// DefaultDays возвращает резервный набор доступности
func (f FallbackFunc) DefaultDays(now time.Time) []domain.DaySlots {
	return f(now)
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
