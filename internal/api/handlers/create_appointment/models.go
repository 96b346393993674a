package create_appointment

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	bookAppointment "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/book_appointment"
)

// CreateAppointmentRequest запрос на создание записи
type CreateAppointmentRequest struct {
	FlowID string `json:"flowId"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Type  string `json:"type"` // portrait | family | wedding | product | documents

	Photographer *string `json:"photographer,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// CreateAppointmentResponse ответ с созданной записью
type CreateAppointmentResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest формирует запрос к use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) *bookAppointment.Request {
	return &bookAppointment.Request{
		FlowID:       r.FlowID,
		UserID:       userID,
		Name:         r.Name,
		Phone:        r.Phone,
		Email:        r.Email,
		Type:         domain.AppointmentType(r.Type),
		Photographer: r.Photographer,
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(result *bookAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		ID:        result.ID,
		Date:      result.Date.Format(domain.DateFormat),
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}
}
