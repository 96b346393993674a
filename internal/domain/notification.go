package domain

import "time"

// NotificationEvent событие, на которое срабатывает правило уведомлений
type NotificationEvent string

const (
	EventAppointmentCreated NotificationEvent = "appointment_created"
	EventStatusChanged      NotificationEvent = "status_changed"
	EventReminder           NotificationEvent = "reminder"
)

// NotificationChannel канал доставки уведомления
type NotificationChannel string

const (
	ChannelEmail NotificationChannel = "email"
	ChannelSMS   NotificationChannel = "sms"
)

// NotificationRule описывает правило уведомлений, настраиваемое администратором.
// Сама доставка уведомлений находится вне зоны ответственности сервиса:
// правила и история ведутся, отправкой занимается внешняя система.
type NotificationRule struct {
	ID            int64
	Event         NotificationEvent
	Channel       NotificationChannel
	OffsetMinutes int // Для напоминаний: за сколько минут до записи
	Template      string
	Enabled       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NotificationRecord запись в истории уведомлений
type NotificationRecord struct {
	ID            int64
	RuleID        int64
	AppointmentID int64
	Channel       NotificationChannel
	Recipient     string
	Message       string
	RecordedAt    time.Time
}
