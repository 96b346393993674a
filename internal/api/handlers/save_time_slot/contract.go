package save_time_slot

import (
	"context"

	saveTimeSlot "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/save_time_slot"
)

type SaveTimeSlotUseCase interface {
	Execute(ctx context.Context, req *saveTimeSlot.Request) (*saveTimeSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
