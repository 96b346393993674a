package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlot_Key(t *testing.T) {
	s := slot(1, "09:00", "12:00")
	assert.Equal(t, "09:00-12:00", s.Key())
}

func TestDaySlots_HasAvailability(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	day := DaySlots{
		Date: date,
		Slots: []TimeSlot{
			{StartTime: mustTime("09:00"), EndTime: mustTime("10:00"), Available: false},
			{StartTime: mustTime("10:00"), EndTime: mustTime("11:00"), Available: false},
		},
	}
	assert.False(t, day.HasAvailability())

	day.Slots[1].Available = true
	assert.True(t, day.HasAvailability())

	empty := DaySlots{Date: date}
	assert.False(t, empty.HasAvailability())
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusConfirmed, StatusRejected, false},
		{StatusRejected, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		appt := &Appointment{Status: tt.from}
		assert.Equal(t, tt.want, appt.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
