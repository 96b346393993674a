package domain

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusRejected  AppointmentStatus = "rejected"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentType тип фотосессии
type AppointmentType string

const (
	TypePortrait   AppointmentType = "portrait"
	TypeFamily     AppointmentType = "family"
	TypeWedding    AppointmentType = "wedding"
	TypeProduct    AppointmentType = "product"
	TypeDocuments  AppointmentType = "documents"
)

// Appointment represents a customer booking in the studio
type Appointment struct {
	ID     int64
	UserID int64

	Name  string
	Phone string
	Email string
	Type  AppointmentType

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    AppointmentStatus

	Photographer *string
	Notes        *string

	RejectionReason *string
	CancelledAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Interval returns the occupied time interval for overlap checks
func (a *Appointment) Interval() TimeSlot {
	return TimeSlot{ID: a.ID, StartTime: a.StartTime, EndTime: a.EndTime}
}

// CanTransitionTo reports whether the status change is allowed.
// pending → confirmed/rejected/cancelled, confirmed → cancelled;
// rejected and cancelled are terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	switch a.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusRejected || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// AppointmentsFilter фильтр для выборки записей администратором
type AppointmentsFilter struct {
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	IncludeInactive bool               // Включать ли отклонённые и отменённые записи
}
