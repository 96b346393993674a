package domain

import (
	"errors"
	"time"
)

// ErrNoDateSelected возвращается при попытке выбрать слот до выбора даты
var ErrNoDateSelected = errors.New("domain: no date selected")

// SelectionState represents the stage of a booking-flow selection
type SelectionState int

const (
	NoneSelected SelectionState = iota
	DateSelected
	DateAndSlotSelected
)

// Selection tracks a customer's chosen date and slot across a single
// booking flow. A slot key is valid only while paired with the date it
// was chosen for, so changing the date always clears the slot.
type Selection struct {
	state   SelectionState
	date    time.Time
	slotKey string
}

// NewSelection returns an empty selection
func NewSelection() *Selection {
	return &Selection{state: NoneSelected}
}

// State returns the current selection state
func (s *Selection) State() SelectionState {
	return s.state
}

// Date returns the selected date; zero value when no date is selected
func (s *Selection) Date() time.Time {
	return s.date
}

// SlotKey returns the selected slot key ("HH:MM-HH:MM"); empty when no
// slot is selected
func (s *Selection) SlotKey() string {
	return s.slotKey
}

// SelectDate moves the selection to DateSelected from any state.
// Любой ранее выбранный слот сбрасывается — это осознанное правило,
// а не побочный эффект: слот имеет смысл только в паре со своей датой.
func (s *Selection) SelectDate(date time.Time) {
	s.state = DateSelected
	s.date = date
	s.slotKey = ""
}

// SelectSlot records the chosen slot. Valid only after a date has been
// selected; the caller must guard against selecting a slot first.
func (s *Selection) SelectSlot(slotKey string) error {
	if s.state == NoneSelected {
		return ErrNoDateSelected
	}
	s.state = DateAndSlotSelected
	s.slotKey = slotKey
	return nil
}

// Reset returns the selection to NoneSelected. Used after a successful
// submission.
func (s *Selection) Reset() {
	s.state = NoneSelected
	s.date = time.Time{}
	s.slotKey = ""
}
