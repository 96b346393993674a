package booking_flow

// SelectDateRequest запрос на выбор даты
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-08-24"
}

// SelectSlotRequest запрос на выбор слота
type SelectSlotRequest struct {
	SlotKey string `json:"slotKey"` // "HH:MM-HH:MM"
}
