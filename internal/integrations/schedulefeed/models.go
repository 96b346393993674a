package schedulefeed

// RegularSlotPayload регулярный (еженедельный) слот из календарного фида
type RegularSlotPayload struct {
	ID      int64  `json:"id"`
	Weekday int    `json:"weekday"` // 0 = Sunday ... 6 = Saturday
	Start   string `json:"start"`   // "HH:MM"
	End     string `json:"end"`     // "HH:MM"
	Enabled bool   `json:"enabled"`
}

// SpecialSlotPayload разовый слот на конкретную дату из календарного фида
type SpecialSlotPayload struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"` // "YYYY-MM-DD"
	Start   string `json:"start"`
	End     string `json:"end"`
	Enabled bool   `json:"enabled"`
}

// Schedule полный набор слотов, отдаваемый фидом
type Schedule struct {
	Regular []RegularSlotPayload
	Special []SpecialSlotPayload
}

// ErrorResponse модель ошибки от календарного фида
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
