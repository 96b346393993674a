package update_appointment_status

import "github.com/m04kA/PhotoStudio-BookingService/internal/service/appointments/models"

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string  `json:"status"` // confirmed | rejected | cancelled
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest формирует запрос к сервису
func (r *UpdateStatusRequest) ToServiceRequest(appointmentID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		ID:     appointmentID,
		Status: r.Status,
		Reason: r.Reason,
	}
}
