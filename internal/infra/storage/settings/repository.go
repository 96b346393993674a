package settings

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Repository хранилище настроек студии в памяти процесса
type Repository struct {
	mu       sync.RWMutex
	settings domain.StudioSettings
}

// NewRepository создает хранилище с переданными начальными настройками.
// nil означает настройки по умолчанию.
func NewRepository(initial *domain.StudioSettings) *Repository {
	if initial == nil {
		initial = domain.DefaultStudioSettings()
	}
	return &Repository{settings: *initial}
}

// Get возвращает текущие настройки студии
func (r *Repository) Get(ctx context.Context) (*domain.StudioSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.settings
	return &result, nil
}

// Update заменяет настройки студии
func (r *Repository) Update(ctx context.Context, settings *domain.StudioSettings) (*domain.StudioSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *settings
	stored.UpdatedAt = time.Now()
	r.settings = stored

	result := stored
	return &result, nil
}
