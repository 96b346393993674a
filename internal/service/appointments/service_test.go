package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/appointment"
	notificationRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/notification"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/appointments/models"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/ptr"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	svc    *Service
	appts  *appointmentRepo.Repository
	notifs *notificationRepo.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	appts := appointmentRepo.NewRepository()
	notifs := notificationRepo.NewRepository()
	return &testEnv{
		svc:    NewService(appts, notifs, nopLogger{}),
		appts:  appts,
		notifs: notifs,
	}
}

func (e *testEnv) seed(t *testing.T, userID int64, date time.Time, status domain.AppointmentStatus) int64 {
	t.Helper()
	created, err := e.appts.Create(context.Background(), &domain.Appointment{
		UserID:    userID,
		Name:      "Anna Petrova",
		Phone:     "+79990001122",
		Email:     "anna@example.com",
		Type:      domain.TypePortrait,
		Date:      date,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
		Status:    status,
	})
	require.NoError(t, err)
	return created.ID
}

var testDate = time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)

func TestService_GetByID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	id := env.seed(t, 42, testDate, domain.StatusPending)

	t.Run("owner sees own appointment", func(t *testing.T) {
		resp, err := env.svc.GetByID(ctx, id, 42, false)
		require.NoError(t, err)
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("other user is denied", func(t *testing.T) {
		_, err := env.svc.GetByID(ctx, id, 99, false)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin sees any appointment", func(t *testing.T) {
		resp, err := env.svc.GetByID(ctx, id, 99, true)
		require.NoError(t, err)
		assert.Equal(t, id, resp.ID)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := env.svc.GetByID(ctx, 12345, 42, true)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_GetUserAppointments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seed(t, 42, testDate, domain.StatusPending)
	env.seed(t, 42, testDate.AddDate(0, 0, 1), domain.StatusConfirmed)
	env.seed(t, 7, testDate, domain.StatusPending)

	t.Run("all appointments of the user", func(t *testing.T) {
		resp, err := env.svc.GetUserAppointments(ctx, &models.GetUserAppointmentsRequest{UserID: 42})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		resp, err := env.svc.GetUserAppointments(ctx, &models.GetUserAppointmentsRequest{
			UserID: 42,
			Status: ptr.Ptr("confirmed"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Appointments, 1)
		assert.Equal(t, "confirmed", resp.Appointments[0].Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := env.svc.GetUserAppointments(ctx, &models.GetUserAppointmentsRequest{
			UserID: 42,
			Status: ptr.Ptr("done"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetAdminAppointments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seed(t, 42, testDate, domain.StatusPending)
	env.seed(t, 7, testDate.AddDate(0, 0, 5), domain.StatusConfirmed)
	env.seed(t, 8, testDate, domain.StatusCancelled)

	t.Run("active appointments by default", func(t *testing.T) {
		resp, err := env.svc.GetAdminAppointments(ctx, &models.GetAdminAppointmentsRequest{})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 2)
	})

	t.Run("inactive included on request", func(t *testing.T) {
		resp, err := env.svc.GetAdminAppointments(ctx, &models.GetAdminAppointmentsRequest{IncludeInactive: true})
		require.NoError(t, err)
		assert.Len(t, resp.Appointments, 3)
	})

	t.Run("filtered by period", func(t *testing.T) {
		resp, err := env.svc.GetAdminAppointments(ctx, &models.GetAdminAppointmentsRequest{
			StartDate: &testDate,
			EndDate:   &testDate,
		})
		require.NoError(t, err)
		require.Len(t, resp.Appointments, 1)
		assert.Equal(t, "pending", resp.Appointments[0].Status)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := env.svc.GetAdminAppointments(ctx, &models.GetAdminAppointmentsRequest{
			Status: ptr.Ptr("done"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("pending to confirmed", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusPending)
		resp, err := env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{ID: id, Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusPending)

		_, err := env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{ID: id, Status: "rejected"})
		assert.ErrorIs(t, err, ErrReasonRequired)

		_, err = env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{
			ID: id, Status: "rejected", Reason: ptr.Ptr("   "),
		})
		assert.ErrorIs(t, err, ErrReasonRequired)

		resp, err := env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{
			ID: id, Status: "rejected", Reason: ptr.Ptr("double booking"),
		})
		require.NoError(t, err)
		assert.Equal(t, "rejected", resp.Status)
		require.NotNil(t, resp.RejectionReason)
		assert.Equal(t, "double booking", *resp.RejectionReason)
	})

	t.Run("invalid status value", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusPending)
		_, err := env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{ID: id, Status: "done"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("terminal status cannot change", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusCancelled)
		_, err := env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{ID: id, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("confirmed cannot be rejected", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusConfirmed)
		_, err := env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{
			ID: id, Status: "rejected", Reason: ptr.Ptr("late"),
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{ID: 12345, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_UpdateStatus_RecordsNotification(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Базовое правило status_changed включено по умолчанию; задаем шаблон
	_, err := env.notifs.SaveRule(ctx, &domain.NotificationRule{
		ID:       2,
		Event:    domain.EventStatusChanged,
		Channel:  domain.ChannelEmail,
		Template: "{name}: {status}",
		Enabled:  true,
	})
	require.NoError(t, err)

	id := env.seed(t, 42, testDate, domain.StatusPending)
	_, err = env.svc.UpdateStatus(ctx, &models.UpdateStatusRequest{ID: id, Status: "confirmed"})
	require.NoError(t, err)

	history, err := env.notifs.ListHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "anna@example.com", history[0].Recipient)
	assert.Equal(t, "Anna Petrova: confirmed", history[0].Message)
}

func TestService_Cancel(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("owner cancels pending appointment", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusPending)
		resp, err := env.svc.Cancel(ctx, id, 42)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.NotNil(t, resp.CancelledAt)
	})

	t.Run("owner cancels confirmed appointment", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusConfirmed)
		resp, err := env.svc.Cancel(ctx, id, 42)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("other user cannot cancel", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusPending)
		_, err := env.svc.Cancel(ctx, id, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("rejected appointment cannot be cancelled", func(t *testing.T) {
		id := env.seed(t, 42, testDate, domain.StatusRejected)
		_, err := env.svc.Cancel(ctx, id, 42)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := env.svc.Cancel(ctx, 12345, 42)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
