package book_appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/appointment"
	notificationRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/notification"
	settingsRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookingflow"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// mutableChecker набор слотов, который тест меняет между выбором и записью
type mutableChecker struct {
	slots []domain.TimeSlot
}

func (c *mutableChecker) SlotsForDate(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	return c.slots, nil
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	uc      *UseCase
	flows   *bookingflow.Service
	appts   *appointmentRepo.Repository
	notifs  *notificationRepo.Repository
	checker *mutableChecker
}

func newTestEnv(t *testing.T, settings *domain.StudioSettings) *testEnv {
	t.Helper()

	checker := &mutableChecker{slots: []domain.TimeSlot{
		{StartTime: types.TimeString("09:00"), EndTime: types.TimeString("10:00"), Available: true},
		{StartTime: types.TimeString("10:00"), EndTime: types.TimeString("11:00"), Available: true},
	}}

	appts := appointmentRepo.NewRepository()
	notifs := notificationRepo.NewRepository()
	flows := bookingflow.NewService(checker, nopLogger{})

	uc := NewUseCase(appts, notifs, settingsRepo.NewRepository(settings), checker, flows, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}

	return &testEnv{uc: uc, flows: flows, appts: appts, notifs: notifs, checker: checker}
}

// completedFlow создает flow с выбранными датой и слотом
func (e *testEnv) completedFlow(t *testing.T, date time.Time, slotKey string) string {
	t.Helper()
	ctx := context.Background()

	flow, err := e.flows.Start(ctx)
	require.NoError(t, err)
	_, err = e.flows.SelectDate(ctx, flow.FlowID, date)
	require.NoError(t, err)
	_, err = e.flows.SelectSlot(ctx, flow.FlowID, slotKey)
	require.NoError(t, err)

	return flow.FlowID
}

func validRequest(flowID string) *Request {
	return &Request{
		FlowID: flowID,
		UserID: 42,
		Name:   "Anna Petrova",
		Phone:  "+7 999 000-11-22",
		Email:  "anna@example.com",
		Type:   domain.TypePortrait,
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	env := newTestEnv(t, domain.DefaultStudioSettings())
	ctx := context.Background()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	flowID := env.completedFlow(t, date, "09:00-10:00")

	resp, err := env.uc.Execute(ctx, validRequest(flowID))
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, date, resp.Date)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:00", resp.EndTime)
	assert.Equal(t, domain.StatusPending, resp.Status)

	created, err := env.appts.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)
	assert.Equal(t, "Anna Petrova", created.Name)

	// Использованный flow завершается и пропадает
	_, err = env.flows.Get(ctx, flowID)
	assert.ErrorIs(t, err, bookingflow.ErrFlowNotFound)
}

func TestExecute_RecordsNotifications(t *testing.T) {
	env := newTestEnv(t, domain.DefaultStudioSettings())
	ctx := context.Background()
	date := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

	// Правило email для события создания записи с плейсхолдерами
	_, err := env.notifs.SaveRule(ctx, &domain.NotificationRule{
		ID:       1,
		Event:    domain.EventAppointmentCreated,
		Channel:  domain.ChannelEmail,
		Template: "Hello {name}, your session is on {date} at {start}-{end}",
		Enabled:  true,
	})
	require.NoError(t, err)

	flowID := env.completedFlow(t, date, "10:00-11:00")

	resp, err := env.uc.Execute(ctx, validRequest(flowID))
	require.NoError(t, err)

	history, err := env.notifs.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)

	record := history[0]
	assert.Equal(t, int64(1), record.RuleID)
	assert.Equal(t, resp.ID, record.AppointmentID)
	assert.Equal(t, domain.ChannelEmail, record.Channel)
	assert.Equal(t, "anna@example.com", record.Recipient)
	assert.Equal(t, "Hello Anna Petrova, your session is on 2026-09-03 at 10:00-11:00", record.Message)
}

func TestExecute_Validation(t *testing.T) {
	env := newTestEnv(t, domain.DefaultStudioSettings())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty flow id", func(req *Request) { req.FlowID = "" }},
		{"non-positive user id", func(req *Request) { req.UserID = 0 }},
		{"blank name", func(req *Request) { req.Name = "   " }},
		{"name too long", func(req *Request) { req.Name = strings.Repeat("a", domain.MaxNameLength+1) }},
		{"bad phone", func(req *Request) { req.Phone = "not-a-phone" }},
		{"phone too short", func(req *Request) { req.Phone = "+1234" }},
		{"bad email", func(req *Request) { req.Email = "anna@" }},
		{"unknown type", func(req *Request) { req.Type = domain.AppointmentType("landscape") }},
		{"notes too long", func(req *Request) {
			notes := strings.Repeat("n", domain.MaxNotesLength+1)
			req.Notes = &notes
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest("some-flow")
			tt.mutate(req)
			_, err := env.uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_FlowNotFound(t *testing.T) {
	env := newTestEnv(t, domain.DefaultStudioSettings())

	_, err := env.uc.Execute(context.Background(), validRequest("missing-flow"))
	assert.ErrorIs(t, err, ErrFlowNotFound)
}

func TestExecute_IncompleteSelection(t *testing.T) {
	env := newTestEnv(t, domain.DefaultStudioSettings())
	ctx := context.Background()

	flow, err := env.flows.Start(ctx)
	require.NoError(t, err)
	_, err = env.flows.SelectDate(ctx, flow.FlowID, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	_, err = env.uc.Execute(ctx, validRequest(flow.FlowID))
	assert.ErrorIs(t, err, ErrIncompleteSelection)
}

func TestExecute_DateBeyondHorizon(t *testing.T) {
	settings := domain.DefaultStudioSettings()
	settings.AdvanceBookingDays = 1
	env := newTestEnv(t, settings)
	ctx := context.Background()

	flowID := env.completedFlow(t, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "09:00-10:00")

	_, err := env.uc.Execute(ctx, validRequest(flowID))
	assert.ErrorIs(t, err, ErrDateTooFarAhead)
}

func TestExecute_SlotTakenBetweenSelectionAndSubmit(t *testing.T) {
	env := newTestEnv(t, domain.DefaultStudioSettings())
	ctx := context.Background()

	flowID := env.completedFlow(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), "09:00-10:00")

	// Слот заняли после выбора, но до подтверждения
	env.checker.slots[0].Available = false

	_, err := env.uc.Execute(ctx, validRequest(flowID))
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// Flow остается живым, пользователь может выбрать другой слот
	_, err = env.flows.Get(ctx, flowID)
	require.NoError(t, err)
}

func TestExecute_SlotVanishedFromSchedule(t *testing.T) {
	env := newTestEnv(t, domain.DefaultStudioSettings())
	ctx := context.Background()

	flowID := env.completedFlow(t, time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), "09:00-10:00")

	// Администратор удалил слот из расписания
	env.checker.slots = env.checker.slots[1:]

	_, err := env.uc.Execute(ctx, validRequest(flowID))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
