package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

var (
	// ErrInvalidFormat возвращается, когда время слота не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("domain: invalid time format")

	// ErrInvalidRange возвращается, когда конец слота не позже его начала
	ErrInvalidRange = errors.New("domain: slot end must be after start")
)

// ValidateSlotTimes validates a candidate slot's boundaries.
//
// Both values must match 24-hour HH:MM (single-digit hours are accepted)
// and the end must be strictly after the start. Zero-length and inverted
// slots are rejected here, before any conflict check sees them.
// Errors are field-scoped so the caller can highlight the failing field.
func ValidateSlotTimes(start, end string) (types.TimeString, types.TimeString, error) {
	startTS, err := types.NewTimeStringFromString(start)
	if err != nil {
		return "", "", fmt.Errorf("%w: start: %v", ErrInvalidFormat, err)
	}

	endTS, err := types.NewTimeStringFromString(end)
	if err != nil {
		return "", "", fmt.Errorf("%w: end: %v", ErrInvalidFormat, err)
	}

	if !endTS.IsAfter(startTS) {
		return "", "", fmt.Errorf("%w: %s >= %s", ErrInvalidRange, start, end)
	}

	return startTS, endTS, nil
}
