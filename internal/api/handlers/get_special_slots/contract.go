package get_special_slots

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/timeslots/models"
)

type TimeSlotService interface {
	ListSpecial(ctx context.Context) (*models.SpecialSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
