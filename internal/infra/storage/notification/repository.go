package notification

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Repository хранилище правил и истории уведомлений в памяти процесса.
// Доставкой уведомлений сервис не занимается: здесь только настройки
// правил и журнал того, что было зафиксировано.
type Repository struct {
	mu         sync.RWMutex
	rules      map[int64]domain.NotificationRule
	history    []domain.NotificationRecord
	nextRuleID int64
	nextRecID  int64
}

// NewRepository создает хранилище с базовым набором правил
func NewRepository() *Repository {
	r := &Repository{
		rules:      make(map[int64]domain.NotificationRule),
		history:    make([]domain.NotificationRecord, 0),
		nextRuleID: 1,
		nextRecID:  1,
	}

	// Базовые правила: подтверждение брони и напоминание за сутки
	now := time.Now()
	defaults := []domain.NotificationRule{
		{Event: domain.EventAppointmentCreated, Channel: domain.ChannelEmail, Template: "booking_received", Enabled: true},
		{Event: domain.EventStatusChanged, Channel: domain.ChannelEmail, Template: "status_changed", Enabled: true},
		{Event: domain.EventReminder, Channel: domain.ChannelSMS, OffsetMinutes: 24 * 60, Template: "reminder", Enabled: false},
	}
	for _, rule := range defaults {
		rule.ID = r.nextRuleID
		rule.CreatedAt = now
		rule.UpdatedAt = now
		r.rules[rule.ID] = rule
		r.nextRuleID++
	}

	return r
}

// ListRules возвращает все правила уведомлений
func (r *Repository) ListRules(ctx context.Context) ([]*domain.NotificationRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.NotificationRule, 0, len(r.rules))
	for _, rule := range r.rules {
		rr := rule
		result = append(result, &rr)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// GetRuleByID возвращает правило по ID
func (r *Repository) GetRuleByID(ctx context.Context, id int64) (*domain.NotificationRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[id]
	if !ok {
		return nil, ErrRuleNotFound
	}
	result := rule
	return &result, nil
}

// GetEnabledRulesByEvent возвращает включенные правила для события
func (r *Repository) GetEnabledRulesByEvent(ctx context.Context, event domain.NotificationEvent) ([]*domain.NotificationRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.NotificationRule, 0)
	for _, rule := range r.rules {
		if rule.Event == event && rule.Enabled {
			rr := rule
			result = append(result, &rr)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// SaveRule обновляет существующее правило
func (r *Repository) SaveRule(ctx context.Context, rule *domain.NotificationRule) (*domain.NotificationRule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.rules[rule.ID]
	if !ok {
		return nil, ErrRuleNotFound
	}

	stored := *rule
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	r.rules[stored.ID] = stored

	result := stored
	return &result, nil
}

// AppendRecord добавляет запись в историю уведомлений
func (r *Repository) AppendRecord(ctx context.Context, record *domain.NotificationRecord) (*domain.NotificationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *record
	stored.ID = r.nextRecID
	r.nextRecID++
	if stored.RecordedAt.IsZero() {
		stored.RecordedAt = time.Now()
	}

	r.history = append(r.history, stored)
	result := stored
	return &result, nil
}

// ListHistory возвращает историю уведомлений, новые записи первыми
func (r *Repository) ListHistory(ctx context.Context) ([]*domain.NotificationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.NotificationRecord, 0, len(r.history))
	for i := len(r.history) - 1; i >= 0; i-- {
		rec := r.history[i]
		result = append(result, &rec)
	}
	return result, nil
}
