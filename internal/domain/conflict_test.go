package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/ptr"
)

func slot(id int64, start, end string) TimeSlot {
	return TimeSlot{ID: id, StartTime: mustTime(start), EndTime: mustTime(end)}
}

func TestHasConflict(t *testing.T) {
	pool := []TimeSlot{
		slot(1, "09:00", "12:00"),
		slot(2, "14:00", "17:00"),
	}

	tests := []struct {
		name      string
		candidate TimeSlot
		excludeID *int64
		want      bool
	}{
		{
			name:      "overlapping interval conflicts",
			candidate: slot(0, "11:00", "13:00"),
			want:      true,
		},
		{
			name:      "contained interval conflicts",
			candidate: slot(0, "10:00", "11:00"),
			want:      true,
		},
		{
			name:      "touching end boundary does not conflict",
			candidate: slot(0, "12:00", "14:00"),
			want:      false,
		},
		{
			name:      "touching start boundary does not conflict",
			candidate: slot(0, "07:00", "09:00"),
			want:      false,
		},
		{
			name:      "gap between slots does not conflict",
			candidate: slot(0, "12:30", "13:30"),
			want:      false,
		},
		{
			name:      "identical interval conflicts",
			candidate: slot(0, "09:00", "12:00"),
			want:      true,
		},
		{
			name:      "slot does not conflict with itself when excluded",
			candidate: slot(1, "09:00", "12:00"),
			excludeID: ptr.Ptr(int64(1)),
			want:      false,
		},
		{
			name:      "exclusion only skips the matching id",
			candidate: slot(2, "10:00", "11:00"),
			excludeID: ptr.Ptr(int64(2)),
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasConflict(tt.candidate, pool, tt.excludeID))
		})
	}
}

func TestHasConflict_EmptyPool(t *testing.T) {
	assert.False(t, HasConflict(slot(0, "09:00", "10:00"), nil, nil))
	assert.False(t, HasConflict(slot(0, "09:00", "10:00"), []TimeSlot{}, nil))
}

func TestTimeSlot_Overlaps_Symmetry(t *testing.T) {
	a := slot(1, "09:00", "11:00")
	b := slot(2, "10:00", "12:00")

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	c := slot(3, "11:00", "12:00")
	assert.False(t, a.Overlaps(c))
	assert.False(t, c.Overlaps(a))
}
