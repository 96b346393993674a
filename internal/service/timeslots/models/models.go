package models

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// RegularSlotResponse ответ с регулярным слотом недельного расписания
type RegularSlotResponse struct {
	ID        int64     `json:"id"`
	Weekday   int       `json:"weekday"` // 0 = воскресенье
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SpecialSlotResponse ответ с разовым слотом на конкретную дату
type SpecialSlotResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // "2026-08-24"
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegularSlotListResponse список регулярных слотов
type RegularSlotListResponse struct {
	Slots []RegularSlotResponse `json:"slots"`
}

// SpecialSlotListResponse список разовых слотов
type SpecialSlotListResponse struct {
	Slots []SpecialSlotResponse `json:"slots"`
}

// FromDomainRegularList конвертирует domain-слоты в модель ответа
func FromDomainRegularList(slots []*domain.RegularSlot) *RegularSlotListResponse {
	resp := &RegularSlotListResponse{Slots: make([]RegularSlotResponse, 0, len(slots))}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, RegularSlotResponse{
			ID:        slot.ID,
			Weekday:   int(slot.Weekday),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Enabled:   slot.Enabled,
			UpdatedAt: slot.UpdatedAt,
		})
	}
	return resp
}

// FromDomainSpecialList конвертирует domain-слоты в модель ответа
func FromDomainSpecialList(slots []*domain.SpecialSlot) *SpecialSlotListResponse {
	resp := &SpecialSlotListResponse{Slots: make([]SpecialSlotResponse, 0, len(slots))}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, SpecialSlotResponse{
			ID:        slot.ID,
			Date:      slot.Date.Format(domain.DateFormat),
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Enabled:   slot.Enabled,
			UpdatedAt: slot.UpdatedAt,
		})
	}
	return resp
}
