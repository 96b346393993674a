package booking_flow

import (
	"context"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookingflow/models"
)

type BookingFlowService interface {
	Start(ctx context.Context) (*models.FlowResponse, error)
	Get(ctx context.Context, flowID string) (*models.FlowResponse, error)
	SelectDate(ctx context.Context, flowID string, date time.Time) (*models.FlowResponse, error)
	SelectSlot(ctx context.Context, flowID string, slotKey string) (*models.FlowResponse, error)
	Reset(ctx context.Context, flowID string) (*models.FlowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
