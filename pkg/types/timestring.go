package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidTimeFormat возвращается при некорректном формате времени
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

// ErrTimeOutOfRange возвращается, когда арифметика над временем выходит за границы суток
var ErrTimeOutOfRange = errors.New("types: time out of range")

// Часы могут быть записаны как с ведущим нулём, так и без него ("9:00" и "09:00")
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):([0-5][0-9])$`)

const minutesPerDay = 24 * 60

// TimeString represents a wall-clock time of day in "HH:MM" format.
// The value is always stored in canonical zero-padded form, so string
// comparison and minute comparison give the same ordering.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only the
// hour and minute components.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// A single-digit hour ("9:00") is accepted and normalized to "09:00".
func NewTimeStringFromString(s string) (TimeString, error) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, minutes := atoi2(m[1]), atoi2(m[2])
	return fromMinutes(hours*60 + minutes), nil
}

// String returns the canonical "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the time as minutes since midnight.
// The zero-padded canonical form makes this safe without re-validation.
func (t TimeString) Minutes() int {
	if len(t) != 5 {
		return 0
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	minutes := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + minutes
}

// IsBefore reports whether t is strictly before other.
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter reports whether t is strictly after other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// AddMinutes returns the time shifted forward by the given number of
// minutes. Crossing midnight is an error: slots never span days.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.Minutes() + minutes
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("%w: %s + %dm", ErrTimeOutOfRange, t, minutes)
	}
	return fromMinutes(total), nil
}

func fromMinutes(total int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}

// atoi2 парсит одну-две десятичные цифры; корректность гарантирует timePattern
func atoi2(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
