package save_time_slot

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	saveTimeSlot "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/save_time_slot"
)

// SaveTimeSlotRequest запрос на создание или обновление слота
type SaveTimeSlotRequest struct {
	Kind    string `json:"kind"`              // regular | special
	Weekday *int   `json:"weekday,omitempty"` // 0 = воскресенье, для regular
	Date    string `json:"date,omitempty"`    // "2026-08-24", для special
	Start   string `json:"start"`             // "HH:MM"
	End     string `json:"end"`               // "HH:MM"
	Enabled bool   `json:"enabled"`
}

// SaveTimeSlotResponse ответ с сохраненным слотом
type SaveTimeSlotResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Weekday   *int      `json:"weekday,omitempty"`
	Date      *string   `json:"date,omitempty"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUseCaseRequest формирует запрос к use case
func (r *SaveTimeSlotRequest) ToUseCaseRequest(slotID int64) (*saveTimeSlot.Request, error) {
	req := &saveTimeSlot.Request{
		SlotID:  slotID,
		Kind:    domain.SlotKind(r.Kind),
		Weekday: r.Weekday,
		Start:   r.Start,
		End:     r.End,
		Enabled: r.Enabled,
	}

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(result *saveTimeSlot.Response) *SaveTimeSlotResponse {
	resp := &SaveTimeSlotResponse{
		ID:        result.ID,
		Kind:      string(result.Kind),
		Weekday:   result.Weekday,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Enabled:   result.Enabled,
		UpdatedAt: result.UpdatedAt,
	}
	if result.Date != nil {
		date := result.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	return resp
}
