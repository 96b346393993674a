package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/session"
	bookAppointment "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgUnauthorized        = "требуется аутентификация"
	msgFlowNotFound        = "сессия записи не найдена или истекла"
	msgIncompleteSelection = "сначала выберите дату и слот"
	msgSlotTaken           = "выбранный слот уже занят"
	msgSlotMissing         = "выбранный слот отсутствует в расписании"
	msgTooFarAhead         = "дата выходит за горизонт записи"
	msgInvalidData         = "некорректные данные записи"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s := session.FromContext(r.Context())
	if s == nil {
		h.logger.Warn("POST /appointments - Missing session")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(s.UserID))
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrFlowNotFound):
			h.logger.Warn("POST /appointments - Flow not found: flow_id=%s, user_id=%d", req.FlowID, s.UserID)
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, bookAppointment.ErrIncompleteSelection):
			h.logger.Warn("POST /appointments - Incomplete selection: flow_id=%s, user_id=%d", req.FlowID, s.UserID)
			handlers.RespondBadRequest(w, msgIncompleteSelection)

		case errors.Is(err, bookAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: flow_id=%s, user_id=%d", req.FlowID, s.UserID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Slot not found: flow_id=%s, user_id=%d", req.FlowID, s.UserID)
			handlers.RespondConflict(w, msgSlotMissing)

		case errors.Is(err, bookAppointment.ErrDateTooFarAhead):
			h.logger.Warn("POST /appointments - Date too far ahead: flow_id=%s, user_id=%d", req.FlowID, s.UserID)
			handlers.RespondBadRequest(w, msgTooFarAhead)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid data: user_id=%d, error=%v", s.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v", s.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: id=%d, user_id=%d", result.ID, s.UserID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
