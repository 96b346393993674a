package save_time_slot

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	GetRegularByID(ctx context.Context, id int64) (*domain.RegularSlot, error)
	GetSpecialByID(ctx context.Context, id int64) (*domain.SpecialSlot, error)
	ListRegularByWeekday(ctx context.Context, weekday time.Weekday) ([]*domain.RegularSlot, error)
	ListSpecialByDate(ctx context.Context, date time.Time) ([]*domain.SpecialSlot, error)
	SaveRegular(ctx context.Context, slot *domain.RegularSlot) (*domain.RegularSlot, error)
	SaveSpecial(ctx context.Context, slot *domain.SpecialSlot) (*domain.SpecialSlot, error)
}

// SettingsRepository интерфейс репозитория настроек студии
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.StudioSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
