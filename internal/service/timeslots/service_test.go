package timeslots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	timeslotRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(t *testing.T) (*Service, *timeslotRepo.Repository) {
	t.Helper()
	repo := timeslotRepo.NewRepository()
	return NewService(repo, nopLogger{}), repo
}

func TestService_ListRegular(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	resp, err := svc.ListRegular(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	_, err = repo.SaveRegular(ctx, &domain.RegularSlot{
		Weekday:   time.Monday,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
		Enabled:   true,
	})
	require.NoError(t, err)

	resp, err = svc.ListRegular(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int(time.Monday), resp.Slots[0].Weekday)
	assert.Equal(t, "09:00", resp.Slots[0].StartTime)
}

func TestService_ListSpecial(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := repo.SaveSpecial(ctx, &domain.SpecialSlot{
		Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("14:00"),
		EndTime:   types.TimeString("16:00"),
		Enabled:   true,
	})
	require.NoError(t, err)

	resp, err := svc.ListSpecial(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2026-09-05", resp.Slots[0].Date)
}

func TestService_Delete(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	saved, err := repo.SaveRegular(ctx, &domain.RegularSlot{
		Weekday:   time.Monday,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, saved.ID))

	resp, err := svc.ListRegular(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	assert.ErrorIs(t, svc.Delete(ctx, saved.ID), ErrSlotNotFound)
}
