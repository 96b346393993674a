package settings

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/settings/models"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// Service сервис для работы с настройками студии
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки студии
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update применяет частичное обновление настроек.
// Рабочее окно и лимиты проверяются на итоговом состоянии, чтобы
// перекрестные ограничения (open < close) не обходились по одному полю.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating studio settings")

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	next := *current
	if err := applyUpdate(&next, req); err != nil {
		s.logger.Warn("Update: invalid update: %v", err)
		return nil, err
	}
	if err := validateSettings(&next); err != nil {
		s.logger.Warn("Update: invalid settings: %v", err)
		return nil, err
	}

	saved, err := s.settingsRepo.Update(ctx, &next)
	if err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings updated, working window %s-%s", saved.OpenTime, saved.CloseTime)
	return models.FromDomainSettings(saved), nil
}

// applyUpdate применяет заполненные поля запроса к настройкам
func applyUpdate(settings *domain.StudioSettings, req *models.UpdateSettingsRequest) error {
	if req.StudioName != nil {
		settings.StudioName = strings.TrimSpace(*req.StudioName)
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.OpenTime != nil {
		openTime, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return fmt.Errorf("%w: open time: %v", ErrInvalidInput, err)
		}
		settings.OpenTime = openTime
	}
	if req.CloseTime != nil {
		closeTime, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return fmt.Errorf("%w: close time: %v", ErrInvalidInput, err)
		}
		settings.CloseTime = closeTime
	}
	if req.DefaultSlotDurationMinutes != nil {
		settings.DefaultSlotDurationMinutes = *req.DefaultSlotDurationMinutes
	}
	if req.MinBookingNoticeMinutes != nil {
		settings.MinBookingNoticeMinutes = *req.MinBookingNoticeMinutes
	}
	if req.AdvanceBookingDays != nil {
		settings.AdvanceBookingDays = *req.AdvanceBookingDays
	}
	return nil
}

// validateSettings проверяет итоговое состояние настроек
func validateSettings(settings *domain.StudioSettings) error {
	if settings.StudioName == "" {
		return fmt.Errorf("%w: studio name is required", ErrInvalidInput)
	}
	if len(settings.StudioName) > domain.MaxNameLength {
		return fmt.Errorf("%w: studio name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if settings.ContactEmail != "" {
		if _, err := mail.ParseAddress(settings.ContactEmail); err != nil {
			return fmt.Errorf("%w: invalid contact email", ErrInvalidInput)
		}
	}
	if !settings.OpenTime.IsBefore(settings.CloseTime) {
		return fmt.Errorf("%w: open time %s must be before close time %s",
			ErrInvalidInput, settings.OpenTime, settings.CloseTime)
	}
	if settings.DefaultSlotDurationMinutes < domain.MinSlotDurationMinutes ||
		settings.DefaultSlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be in [%d..%d] minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if settings.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: booking notice must be non-negative", ErrInvalidInput)
	}
	if settings.AdvanceBookingDays < 0 || settings.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advance booking days must be in [0..%d]",
			ErrInvalidInput, domain.MaxAdvanceBookingDays)
	}
	return nil
}
