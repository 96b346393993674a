package models

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// FlowResponse ответ с состоянием booking flow
type FlowResponse struct {
	FlowID    string    `json:"flowId"`
	State     string    `json:"state"` // none | date_selected | date_and_slot_selected
	Date      *string   `json:"date,omitempty"`
	SlotKey   *string   `json:"slotKey,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FromSelection конвертирует domain-выбор в модель ответа
func FromSelection(flowID string, selection *domain.Selection, expiresAt time.Time) *FlowResponse {
	resp := &FlowResponse{
		FlowID:    flowID,
		State:     stateString(selection.State()),
		ExpiresAt: expiresAt,
	}
	if selection.State() >= domain.DateSelected {
		date := selection.Date().Format(domain.DateFormat)
		resp.Date = &date
	}
	if selection.State() == domain.DateAndSlotSelected {
		slotKey := selection.SlotKey()
		resp.SlotKey = &slotKey
	}
	return resp
}

func stateString(state domain.SelectionState) string {
	switch state {
	case domain.DateSelected:
		return "date_selected"
	case domain.DateAndSlotSelected:
		return "date_and_slot_selected"
	default:
		return "none"
	}
}
