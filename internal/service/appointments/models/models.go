package models

import (
	"fmt"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Request модели

// GetUserAppointmentsRequest запрос записей пользователя
type GetUserAppointmentsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// GetAdminAppointmentsRequest запрос записей для администратора
type GetAdminAppointmentsRequest struct {
	Status          *string    `json:"status,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отклонённые и отменённые
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	ID     int64   `json:"id"`
	Status string  `json:"status"`
	Reason *string `json:"reason,omitempty"` // Причина, обязательна при отклонении
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Type  string `json:"type"`

	Date      string `json:"date"` // "2026-08-24"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`

	Photographer *string `json:"photographer,omitempty"`
	Notes        *string `json:"notes,omitempty"`

	RejectionReason *string    `json:"rejectionReason,omitempty"`
	CancelledAt     *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain-запись в модель ответа
func FromDomainAppointment(appt *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              appt.ID,
		UserID:          appt.UserID,
		Name:            appt.Name,
		Phone:           appt.Phone,
		Email:           appt.Email,
		Type:            string(appt.Type),
		Date:            appt.Date.Format(domain.DateFormat),
		StartTime:       appt.StartTime.String(),
		EndTime:         appt.EndTime.String(),
		Status:          string(appt.Status),
		Photographer:    appt.Photographer,
		Notes:           appt.Notes,
		RejectionReason: appt.RejectionReason,
		CancelledAt:     appt.CancelledAt,
		CreatedAt:       appt.CreatedAt,
		UpdatedAt:       appt.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain-записей в модель ответа
func FromDomainAppointmentList(appts []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{Appointments: make([]AppointmentResponse, 0, len(appts))}
	for _, appt := range appts {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(appt))
	}
	return resp
}

// ToDomainStatus конвертирует строку в domain-статус
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(status) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusRejected, domain.StatusCancelled:
		return domain.AppointmentStatus(status), nil
	default:
		return "", fmt.Errorf("unknown status %q", status)
	}
}
