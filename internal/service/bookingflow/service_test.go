package bookingflow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeClock управляемое время для проверки TTL
type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// stubChecker отдает один и тот же набор слотов на любую дату
type stubChecker struct {
	slots []domain.TimeSlot
	err   error
}

func (s stubChecker) SlotsForDate(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	return s.slots, s.err
}

func testSlots() []domain.TimeSlot {
	return []domain.TimeSlot{
		{StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00"), Available: true},
		{StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00"), Available: false},
	}
}

func newTestService(checker AvailabilityChecker) (*Service, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}
	svc := NewService(checker, nopLogger{})
	svc.timeProvider = clock
	return svc, clock
}

func TestService_StartAndGet(t *testing.T) {
	svc, clock := newTestService(stubChecker{slots: testSlots()})
	ctx := context.Background()

	flow, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, flow.FlowID)
	assert.Equal(t, "none", flow.State)
	assert.Nil(t, flow.Date)
	assert.Nil(t, flow.SlotKey)
	assert.Equal(t, clock.now.Add(DefaultFlowTTL), flow.ExpiresAt)

	got, err := svc.Get(ctx, flow.FlowID)
	require.NoError(t, err)
	assert.Equal(t, flow.FlowID, got.FlowID)

	_, err = svc.Get(ctx, "unknown-flow")
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestService_SelectDateResetsSlot(t *testing.T) {
	svc, _ := newTestService(stubChecker{slots: testSlots()})
	ctx := context.Background()
	day1 := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	flow, err := svc.Start(ctx)
	require.NoError(t, err)

	state, err := svc.SelectDate(ctx, flow.FlowID, day1)
	require.NoError(t, err)
	assert.Equal(t, "date_selected", state.State)
	require.NotNil(t, state.Date)
	assert.Equal(t, "2026-09-03", *state.Date)

	state, err = svc.SelectSlot(ctx, flow.FlowID, "09:00-10:00")
	require.NoError(t, err)
	assert.Equal(t, "date_and_slot_selected", state.State)
	require.NotNil(t, state.SlotKey)
	assert.Equal(t, "09:00-10:00", *state.SlotKey)

	// Смена даты сбрасывает выбранный слот
	state, err = svc.SelectDate(ctx, flow.FlowID, day2)
	require.NoError(t, err)
	assert.Equal(t, "date_selected", state.State)
	assert.Nil(t, state.SlotKey)
}

func TestService_SelectSlot(t *testing.T) {
	svc, _ := newTestService(stubChecker{slots: testSlots()})
	ctx := context.Background()
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	flow, err := svc.Start(ctx)
	require.NoError(t, err)

	t.Run("requires a selected date", func(t *testing.T) {
		_, err := svc.SelectSlot(ctx, flow.FlowID, "09:00-10:00")
		assert.ErrorIs(t, err, ErrNoDateSelected)
	})

	_, err = svc.SelectDate(ctx, flow.FlowID, day)
	require.NoError(t, err)

	t.Run("empty key", func(t *testing.T) {
		_, err := svc.SelectSlot(ctx, flow.FlowID, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, err := svc.SelectSlot(ctx, flow.FlowID, "18:00-19:00")
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("occupied slot", func(t *testing.T) {
		_, err := svc.SelectSlot(ctx, flow.FlowID, "10:00-11:00")
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("available slot", func(t *testing.T) {
		state, err := svc.SelectSlot(ctx, flow.FlowID, "09:00-10:00")
		require.NoError(t, err)
		assert.Equal(t, "date_and_slot_selected", state.State)
	})
}

func TestService_Reset(t *testing.T) {
	svc, _ := newTestService(stubChecker{slots: testSlots()})
	ctx := context.Background()

	flow, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.SelectDate(ctx, flow.FlowID, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.SelectSlot(ctx, flow.FlowID, "09:00-10:00")
	require.NoError(t, err)

	state, err := svc.Reset(ctx, flow.FlowID)
	require.NoError(t, err)
	assert.Equal(t, "none", state.State)
	assert.Nil(t, state.Date)
	assert.Nil(t, state.SlotKey)
}

func TestService_Expiry(t *testing.T) {
	svc, clock := newTestService(stubChecker{slots: testSlots()})
	ctx := context.Background()

	flow, err := svc.Start(ctx)
	require.NoError(t, err)

	// Активность продлевает жизнь flow
	clock.Advance(20 * time.Minute)
	_, err = svc.SelectDate(ctx, flow.FlowID, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	_, err = svc.Get(ctx, flow.FlowID)
	require.NoError(t, err)

	// Без активности flow истекает
	clock.Advance(DefaultFlowTTL + time.Minute)
	_, err = svc.Get(ctx, flow.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestService_SelectionAndComplete(t *testing.T) {
	svc, _ := newTestService(stubChecker{slots: testSlots()})
	ctx := context.Background()
	day := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	flow, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.SelectDate(ctx, flow.FlowID, day)
	require.NoError(t, err)
	_, err = svc.SelectSlot(ctx, flow.FlowID, "09:00-10:00")
	require.NoError(t, err)

	selection, err := svc.Selection(ctx, flow.FlowID)
	require.NoError(t, err)
	assert.Equal(t, domain.DateAndSlotSelected, selection.State())
	assert.Equal(t, day, selection.Date())
	assert.Equal(t, "09:00-10:00", selection.SlotKey())

	// Снимок не связан с внутренним состоянием flow
	selection.Reset()
	again, err := svc.Selection(ctx, flow.FlowID)
	require.NoError(t, err)
	assert.Equal(t, domain.DateAndSlotSelected, again.State())

	require.NoError(t, svc.Complete(ctx, flow.FlowID))
	_, err = svc.Get(ctx, flow.FlowID)
	assert.ErrorIs(t, err, ErrFlowNotFound)

	assert.ErrorIs(t, svc.Complete(ctx, flow.FlowID), ErrFlowNotFound)
}
