package domain

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// StudioSettings represents the studio-wide booking configuration
type StudioSettings struct {
	StudioName   string
	ContactEmail string
	ContactPhone string

	// Рабочее окно студии: слоты за его пределами не создаются
	OpenTime  types.TimeString
	CloseTime types.TimeString

	DefaultSlotDurationMinutes int
	MinBookingNoticeMinutes    int
	AdvanceBookingDays         int // 0 = unlimited

	UpdatedAt time.Time
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in
// advance appointments can be made
func (s *StudioSettings) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// DefaultStudioSettings возвращает настройки по умолчанию для первого запуска
func DefaultStudioSettings() *StudioSettings {
	return &StudioSettings{
		StudioName:                 "Photo Studio",
		OpenTime:                   types.TimeString("09:00"),
		CloseTime:                  types.TimeString("21:00"),
		DefaultSlotDurationMinutes: DefaultSlotDurationMinutes,
		MinBookingNoticeMinutes:    DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays:         DefaultAdvanceBookingDays,
	}
}
