package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

func mustTime(s string) types.TimeString {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestValidateSlotTimes(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		start, end, err := ValidateSlotTimes("09:00", "12:00")
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("09:00"), start)
		assert.Equal(t, types.TimeString("12:00"), end)
	})

	t.Run("single digit hour is normalized", func(t *testing.T) {
		start, end, err := ValidateSlotTimes("9:00", "12:00")
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("09:00"), start)
		assert.Equal(t, types.TimeString("12:00"), end)
	})

	t.Run("invalid start format", func(t *testing.T) {
		_, _, err := ValidateSlotTimes("25:00", "12:00")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("invalid end format", func(t *testing.T) {
		_, _, err := ValidateSlotTimes("09:00", "9:60")
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("end equal to start", func(t *testing.T) {
		_, _, err := ValidateSlotTimes("12:00", "12:00")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, err := ValidateSlotTimes("12:00", "09:00")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
