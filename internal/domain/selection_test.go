package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_Flow(t *testing.T) {
	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	s := NewSelection()
	assert.Equal(t, NoneSelected, s.State())

	// Слот нельзя выбрать раньше даты
	err := s.SelectSlot("09:00-10:00")
	assert.ErrorIs(t, err, ErrNoDateSelected)
	assert.Equal(t, NoneSelected, s.State())

	s.SelectDate(day1)
	assert.Equal(t, DateSelected, s.State())
	assert.Equal(t, day1, s.Date())
	assert.Empty(t, s.SlotKey())

	require.NoError(t, s.SelectSlot("09:00-10:00"))
	assert.Equal(t, DateAndSlotSelected, s.State())
	assert.Equal(t, "09:00-10:00", s.SlotKey())

	// Смена даты всегда сбрасывает выбранный слот
	s.SelectDate(day2)
	assert.Equal(t, DateSelected, s.State())
	assert.Equal(t, day2, s.Date())
	assert.Empty(t, s.SlotKey())

	require.NoError(t, s.SelectSlot("14:00-15:00"))
	s.Reset()
	assert.Equal(t, NoneSelected, s.State())
	assert.True(t, s.Date().IsZero())
	assert.Empty(t, s.SlotKey())
}

func TestSelection_ReplaceSlotForSameDate(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	s := NewSelection()
	s.SelectDate(day)
	require.NoError(t, s.SelectSlot("09:00-10:00"))
	require.NoError(t, s.SelectSlot("11:00-12:00"))

	assert.Equal(t, DateAndSlotSelected, s.State())
	assert.Equal(t, "11:00-12:00", s.SlotKey())
}
