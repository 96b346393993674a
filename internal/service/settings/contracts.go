package settings

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек студии
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.StudioSettings, error)
	Update(ctx context.Context, settings *domain.StudioSettings) (*domain.StudioSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
