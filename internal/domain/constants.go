package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes     = 60
	DefaultMinBookingNoticeMinutes = 120 // 2 hours
	DefaultAdvanceBookingDays      = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes   = 15
	MaxSlotDurationMinutes   = 480 // 8 hours
	MaxAdvanceBookingDays    = 365 // 1 year
	MaxNotesLength           = 500
	MaxNameLength            = 120
	MaxAvailabilityRangeDays = 62 // 2 months per request
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых запись занимает слот
// Используется при подсчёте доступности
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses список статусов, при которых запись слот не занимает
var InactiveStatuses = []AppointmentStatus{
	StatusRejected,
	StatusCancelled,
}
