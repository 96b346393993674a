package timeslots

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// TimeSlotRepository интерфейс репозитория слотов
type TimeSlotRepository interface {
	ListRegular(ctx context.Context) ([]*domain.RegularSlot, error)
	ListSpecial(ctx context.Context) ([]*domain.SpecialSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
