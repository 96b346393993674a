package get_regular_slots

import (
	"context"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/timeslots/models"
)

type TimeSlotService interface {
	ListRegular(ctx context.Context) (*models.RegularSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
