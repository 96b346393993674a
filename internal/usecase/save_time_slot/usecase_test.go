package save_time_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	settingsRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/settings"
	timeslotRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/ptr"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(t *testing.T) (*UseCase, *timeslotRepo.Repository) {
	t.Helper()
	slots := timeslotRepo.NewRepository()
	uc := NewUseCase(slots, settingsRepo.NewRepository(domain.DefaultStudioSettings()), nopLogger{})
	return uc, slots
}

func regularRequest(id int64, weekday int, start, end string) *Request {
	return &Request{
		SlotID:  id,
		Kind:    domain.SlotKindRegular,
		Weekday: ptr.Ptr(weekday),
		Start:   start,
		End:     end,
		Enabled: true,
	}
}

func specialRequest(id int64, date time.Time, start, end string) *Request {
	return &Request{
		SlotID:  id,
		Kind:    domain.SlotKindSpecial,
		Date:    &date,
		Start:   start,
		End:     end,
		Enabled: true,
	}
}

func TestExecute_CreateRegularSlot(t *testing.T) {
	uc, _ := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), regularRequest(1, int(time.Monday), "9:00", "10:30"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, domain.SlotKindRegular, resp.Kind)
	require.NotNil(t, resp.Weekday)
	assert.Equal(t, int(time.Monday), *resp.Weekday)
	// Время нормализуется до каноничного "HH:MM"
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "10:30", resp.EndTime)
	assert.True(t, resp.Enabled)
}

func TestExecute_CreateSpecialSlot(t *testing.T) {
	uc, _ := newTestUseCase(t)
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), specialRequest(7, date, "14:00", "16:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, domain.SlotKindSpecial, resp.Kind)
	require.NotNil(t, resp.Date)
	assert.Equal(t, date, *resp.Date)
}

func TestExecute_Validation(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "non-positive slot id",
			req:     regularRequest(0, 1, "09:00", "10:00"),
			wantErr: ErrInvalidInput,
		},
		{
			name: "regular without weekday",
			req: &Request{
				SlotID: 1, Kind: domain.SlotKindRegular,
				Start: "09:00", End: "10:00",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "weekday out of range",
			req:     regularRequest(1, 7, "09:00", "10:00"),
			wantErr: ErrInvalidInput,
		},
		{
			name: "special without date",
			req: &Request{
				SlotID: 1, Kind: domain.SlotKindSpecial,
				Start: "09:00", End: "10:00",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown kind",
			req: &Request{
				SlotID: 1, Kind: domain.SlotKind("weekly"),
				Start: "09:00", End: "10:00",
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "malformed start time",
			req:     regularRequest(1, 1, "25:00", "10:00"),
			wantErr: domain.ErrInvalidFormat,
		},
		{
			name:    "end not after start",
			req:     regularRequest(1, 1, "10:00", "10:00"),
			wantErr: domain.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	// Рабочее окно по умолчанию 09:00-21:00
	uc, _ := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), regularRequest(1, 1, "08:00", "10:00"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	_, err = uc.Execute(context.Background(), regularRequest(1, 1, "20:00", "21:30"))
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)

	// Слот вплотную к границам окна допустим
	_, err = uc.Execute(context.Background(), regularRequest(1, 1, "09:00", "21:00"))
	assert.NoError(t, err)
}

func TestExecute_ConflictWithSameWeekday(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, regularRequest(1, 1, "09:00", "12:00"))
	require.NoError(t, err)

	// Пересечение в тот же день недели
	_, err = uc.Execute(ctx, regularRequest(2, 1, "11:00", "13:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Тот же интервал в другой день недели конфликтом не является
	_, err = uc.Execute(ctx, regularRequest(2, 2, "11:00", "13:00"))
	assert.NoError(t, err)

	// Граничащий интервал в тот же день тоже допустим
	_, err = uc.Execute(ctx, regularRequest(3, 1, "12:00", "14:00"))
	assert.NoError(t, err)
}

func TestExecute_UpdateDoesNotConflictWithItself(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, regularRequest(1, 1, "09:00", "12:00"))
	require.NoError(t, err)

	// Редактирование слота: новый интервал пересекается только с его же прежним
	resp, err := uc.Execute(ctx, regularRequest(1, 1, "10:00", "13:00"))
	require.NoError(t, err)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "13:00", resp.EndTime)
}

func TestExecute_SpecialConflictsWithRegularOfSameWeekday(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // понедельник

	_, err := uc.Execute(ctx, regularRequest(1, int(time.Monday), "09:00", "12:00"))
	require.NoError(t, err)

	// Разовый слот пересекается с регулярным расписанием того же дня недели
	_, err = uc.Execute(ctx, specialRequest(2, date, "11:00", "13:00"))
	assert.ErrorIs(t, err, ErrSlotConflict)

	_, err = uc.Execute(ctx, specialRequest(2, date, "12:00", "14:00"))
	assert.NoError(t, err)
}

func TestExecute_KindMismatch(t *testing.T) {
	uc, slots := newTestUseCase(t)
	ctx := context.Background()

	_, err := slots.SaveSpecial(ctx, &domain.SpecialSlot{
		ID:        5,
		Date:      time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("14:00"),
		EndTime:   types.TimeString("15:00"),
		Enabled:   true,
	})
	require.NoError(t, err)

	// ID занят разовым слотом — регулярный кандидат с тем же ID отклоняется
	_, err = uc.Execute(ctx, regularRequest(5, 1, "09:00", "10:00"))
	assert.ErrorIs(t, err, ErrSlotKindMismatch)
}
