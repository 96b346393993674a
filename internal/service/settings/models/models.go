package models

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// SettingsResponse ответ с настройками студии
type SettingsResponse struct {
	StudioName   string `json:"studioName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`

	DefaultSlotDurationMinutes int `json:"defaultSlotDurationMinutes"`
	MinBookingNoticeMinutes    int `json:"minBookingNoticeMinutes"`
	AdvanceBookingDays         int `json:"advanceBookingDays"` // 0 = без ограничения горизонта

	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateSettingsRequest запрос на частичное обновление настроек
type UpdateSettingsRequest struct {
	StudioName   *string `json:"studioName,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`

	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`

	DefaultSlotDurationMinutes *int `json:"defaultSlotDurationMinutes,omitempty"`
	MinBookingNoticeMinutes    *int `json:"minBookingNoticeMinutes,omitempty"`
	AdvanceBookingDays         *int `json:"advanceBookingDays,omitempty"`
}

// FromDomainSettings конвертирует domain-настройки в модель ответа
func FromDomainSettings(s *domain.StudioSettings) *SettingsResponse {
	return &SettingsResponse{
		StudioName:                 s.StudioName,
		ContactEmail:               s.ContactEmail,
		ContactPhone:               s.ContactPhone,
		OpenTime:                   s.OpenTime.String(),
		CloseTime:                  s.CloseTime.String(),
		DefaultSlotDurationMinutes: s.DefaultSlotDurationMinutes,
		MinBookingNoticeMinutes:    s.MinBookingNoticeMinutes,
		AdvanceBookingDays:         s.AdvanceBookingDays,
		UpdatedAt:                  s.UpdatedAt,
	}
}
