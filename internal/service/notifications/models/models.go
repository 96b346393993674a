package models

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// RuleResponse ответ с правилом уведомлений
type RuleResponse struct {
	ID            int64     `json:"id"`
	Event         string    `json:"event"`
	Channel       string    `json:"channel"`
	OffsetMinutes int       `json:"offsetMinutes"` // Для напоминаний: за сколько минут до записи
	Template      string    `json:"template"`
	Enabled       bool      `json:"enabled"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RuleListResponse список правил уведомлений
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// UpdateRuleRequest запрос на изменение правила.
// Меняются только канал, шаблон, смещение и флаг включения;
// событие правила фиксировано.
type UpdateRuleRequest struct {
	ID            int64   `json:"-"`
	Channel       *string `json:"channel,omitempty"`
	OffsetMinutes *int    `json:"offsetMinutes,omitempty"`
	Template      *string `json:"template,omitempty"`
	Enabled       *bool   `json:"enabled,omitempty"`
}

// RecordResponse ответ с записью истории уведомлений
type RecordResponse struct {
	ID            int64     `json:"id"`
	RuleID        int64     `json:"ruleId"`
	AppointmentID int64     `json:"appointmentId"`
	Channel       string    `json:"channel"`
	Recipient     string    `json:"recipient"`
	Message       string    `json:"message"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// HistoryResponse история уведомлений, новые записи первыми
type HistoryResponse struct {
	Records []RecordResponse `json:"records"`
}

// FromDomainRule конвертирует domain-правило в модель ответа
func FromDomainRule(rule *domain.NotificationRule) *RuleResponse {
	return &RuleResponse{
		ID:            rule.ID,
		Event:         string(rule.Event),
		Channel:       string(rule.Channel),
		OffsetMinutes: rule.OffsetMinutes,
		Template:      rule.Template,
		Enabled:       rule.Enabled,
		UpdatedAt:     rule.UpdatedAt,
	}
}

// FromDomainRuleList конвертирует список domain-правил в модель ответа
func FromDomainRuleList(rules []*domain.NotificationRule) *RuleListResponse {
	resp := &RuleListResponse{Rules: make([]RuleResponse, 0, len(rules))}
	for _, rule := range rules {
		resp.Rules = append(resp.Rules, *FromDomainRule(rule))
	}
	return resp
}

// FromDomainHistory конвертирует историю уведомлений в модель ответа
func FromDomainHistory(records []*domain.NotificationRecord) *HistoryResponse {
	resp := &HistoryResponse{Records: make([]RecordResponse, 0, len(records))}
	for _, record := range records {
		resp.Records = append(resp.Records, RecordResponse{
			ID:            record.ID,
			RuleID:        record.RuleID,
			AppointmentID: record.AppointmentID,
			Channel:       string(record.Channel),
			Recipient:     record.Recipient,
			Message:       record.Message,
			RecordedAt:    record.RecordedAt,
		})
	}
	return resp
}
