package save_time_slot

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Request модель запроса на создание или обновление слота
type Request struct {
	SlotID  int64           // ID слота из URL; у нового слота может совпадать с занятым — тогда это обновление
	Kind    domain.SlotKind // regular | special
	Weekday *int            // День недели (0 = воскресенье), обязателен для regular
	Date    *time.Time      // Дата, обязательна для special
	Start   string          // "HH:MM"
	End     string          // "HH:MM"
	Enabled bool
}

// Response модель ответа с сохраненным слотом
type Response struct {
	ID        int64
	Kind      domain.SlotKind
	Weekday   *int
	Date      *time.Time
	StartTime string
	EndTime   string
	Enabled   bool
	UpdatedAt time.Time
}

func fromRegular(slot *domain.RegularSlot) *Response {
	weekday := int(slot.Weekday)
	return &Response{
		ID:        slot.ID,
		Kind:      domain.SlotKindRegular,
		Weekday:   &weekday,
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
		Enabled:   slot.Enabled,
		UpdatedAt: slot.UpdatedAt,
	}
}

func fromSpecial(slot *domain.SpecialSlot) *Response {
	date := slot.Date
	return &Response{
		ID:        slot.ID,
		Kind:      domain.SlotKindSpecial,
		Date:      &date,
		StartTime: slot.StartTime.String(),
		EndTime:   slot.EndTime.String(),
		Enabled:   slot.Enabled,
		UpdatedAt: slot.UpdatedAt,
	}
}
