package get_availability

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// DefaultOfflineSchedule резервный набор доступности: один день (сегодня)
// с двумя открытыми слотами. Используется, когда календарный фид
// недоступен, чтобы страница записи оставалась рабочей.
// Подключается вызывающей стороной через FallbackFunc.
func DefaultOfflineSchedule(now time.Time) []domain.DaySlots {
	return []domain.DaySlots{
		{
			Date: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
			Slots: []domain.TimeSlot{
				{StartTime: types.TimeString("09:00"), EndTime: types.TimeString("12:00"), Available: true},
				{StartTime: types.TimeString("14:00"), EndTime: types.TimeString("17:00"), Available: true},
			},
		},
	}
}
