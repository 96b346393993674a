package get_user_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/session"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/appointments"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/appointments/models"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgInvalidStatus = "некорректный статус записи"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if s == nil {
		h.logger.Warn("GET /appointments - Missing session")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.GetUserAppointmentsRequest{UserID: s.UserID}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetUserAppointments(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid status: user_id=%d", s.UserID)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /appointments - Failed to get appointments: user_id=%d, error=%v", s.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Retrieved %d appointments: user_id=%d",
		len(result.Appointments), s.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
