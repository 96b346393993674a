package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	notifRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/notification"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications/models"
)

// Service сервис для работы с правилами и историей уведомлений.
// Доставкой занимается внешняя система, здесь только настройки и журнал.
type Service struct {
	notifRepo NotificationRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notifRepo NotificationRepository, logger Logger) *Service {
	return &Service{
		notifRepo: notifRepo,
		logger:    logger,
	}
}

// ListRules возвращает все правила уведомлений
func (s *Service) ListRules(ctx context.Context) (*models.RuleListResponse, error) {
	rules, err := s.notifRepo.ListRules(ctx)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRuleList(rules), nil
}

// UpdateRule меняет настраиваемые поля правила. Событие правила фиксировано:
// набор событий задается системой, администратор настраивает реакцию на них.
func (s *Service) UpdateRule(ctx context.Context, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("UpdateRule: rule id=%d", req.ID)

	rule, err := s.notifRepo.GetRuleByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, notifRepo.ErrRuleNotFound) {
			s.logger.Warn("UpdateRule: rule id=%d not found", req.ID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error for rule id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	if err := applyRuleUpdate(rule, req); err != nil {
		s.logger.Warn("UpdateRule: invalid update for rule id=%d: %v", req.ID, err)
		return nil, err
	}

	saved, err := s.notifRepo.SaveRule(ctx, rule)
	if err != nil {
		s.logger.Error("UpdateRule: failed to save rule id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRule: rule id=%d updated, enabled=%t", saved.ID, saved.Enabled)
	return models.FromDomainRule(saved), nil
}

// ListHistory возвращает историю уведомлений, новые записи первыми
func (s *Service) ListHistory(ctx context.Context) (*models.HistoryResponse, error) {
	records, err := s.notifRepo.ListHistory(ctx)
	if err != nil {
		s.logger.Error("ListHistory: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListHistory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHistory(records), nil
}

// applyRuleUpdate применяет частичное обновление к правилу
func applyRuleUpdate(rule *domain.NotificationRule, req *models.UpdateRuleRequest) error {
	if req.Channel != nil {
		channel := domain.NotificationChannel(*req.Channel)
		if channel != domain.ChannelEmail && channel != domain.ChannelSMS {
			return fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, *req.Channel)
		}
		rule.Channel = channel
	}
	if req.OffsetMinutes != nil {
		if *req.OffsetMinutes < 0 {
			return fmt.Errorf("%w: offset must be non-negative", ErrInvalidInput)
		}
		rule.OffsetMinutes = *req.OffsetMinutes
	}
	if req.Template != nil {
		if strings.TrimSpace(*req.Template) == "" {
			return fmt.Errorf("%w: template must not be empty", ErrInvalidInput)
		}
		rule.Template = *req.Template
	}
	if req.Enabled != nil {
		rule.Enabled = *req.Enabled
	}
	return nil
}
