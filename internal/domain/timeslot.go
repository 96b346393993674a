package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// SlotKind distinguishes recurring weekly-pattern slots from one-off
// slots tied to a specific calendar date.
type SlotKind string

const (
	SlotKindRegular SlotKind = "regular"
	SlotKindSpecial SlotKind = "special"
)

// TimeSlot represents a contiguous time interval that is either open for
// booking or not. Intervals are half-open: [StartTime, EndTime).
type TimeSlot struct {
	ID        int64
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// Key returns the "HH:MM-HH:MM" identifier used by the booking flow to
// reference a slot within a day.
func (s TimeSlot) Key() string {
	return fmt.Sprintf("%s-%s", s.StartTime, s.EndTime)
}

// Overlaps reports whether two half-open intervals actually intersect.
// Touching endpoints (one slot ends exactly where the other starts) do
// not count as an overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(s.EndTime)
}

// RegularSlot is a weekly-pattern slot: it applies to every occurrence of
// its weekday unless a special slot overrides that date.
type RegularSlot struct {
	ID        int64
	Weekday   time.Weekday
	StartTime types.TimeString
	EndTime   types.TimeString
	Enabled   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the slot as a plain TimeSlot for overlap checks.
func (s *RegularSlot) Interval() TimeSlot {
	return TimeSlot{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime, Available: s.Enabled}
}

// SpecialSlot is a one-off slot tied to a specific calendar date. The
// presence of any special slot on a date overrides the regular weekly
// pattern for that whole date.
type SpecialSlot struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Enabled   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the slot as a plain TimeSlot for overlap checks.
func (s *SpecialSlot) Interval() TimeSlot {
	return TimeSlot{ID: s.ID, StartTime: s.StartTime, EndTime: s.EndTime, Available: s.Enabled}
}

// DaySlots groups the slots of a single calendar date in display order.
// The order carries no meaning for conflict checks.
type DaySlots struct {
	Date  time.Time
	Slots []TimeSlot
}

// HasAvailability returns true if at least one slot of the day is
// available for booking. Used to decide whether a calendar day is
// selectable.
func (d DaySlots) HasAvailability() bool {
	for _, slot := range d.Slots {
		if slot.Available {
			return true
		}
	}
	return false
}
