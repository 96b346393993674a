package book_appointment

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	FlowID string // ID booking flow с выбранными датой и слотом
	UserID int64

	Name  string
	Phone string
	Email string
	Type  domain.AppointmentType

	Photographer *string
	Notes        *string
}

// Response модель ответа с созданной записью
type Response struct {
	ID        int64
	Date      time.Time
	StartTime string
	EndTime   string
	Status    domain.AppointmentStatus
	CreatedAt time.Time
}

func fromAppointment(appt *domain.Appointment) *Response {
	return &Response{
		ID:        appt.ID,
		Date:      appt.Date,
		StartTime: appt.StartTime.String(),
		EndTime:   appt.EndTime.String(),
		Status:    appt.Status,
		CreatedAt: appt.CreatedAt,
	}
}
