package booking_flow

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookingflow"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgFlowNotFound       = "сессия записи не найдена или истекла"
	msgNoDateSelected     = "сначала выберите дату"
	msgSlotNotFound       = "слот не найден в расписании выбранного дня"
	msgSlotUnavailable    = "слот уже занят"
	msgMissingSlotKey     = "ключ слота обязателен"
)

type Handler struct {
	service BookingFlowService
	logger  Logger
}

func NewHandler(service BookingFlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStart POST /api/v1/booking-flows
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /booking-flows - Failed to start flow: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /booking-flows - Flow started: flow_id=%s", result.FlowID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleGet GET /api/v1/booking-flows/{flowId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	result, err := h.service.Get(r.Context(), flowID)
	if err != nil {
		h.respondFlowError(w, r, flowID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSelectDate PUT /api/v1/booking-flows/{flowId}/date
func (h *Handler) HandleSelectDate(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-flows/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("PUT /booking-flows/{id}/date - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.SelectDate(r.Context(), flowID, date)
	if err != nil {
		h.respondFlowError(w, r, flowID, err)
		return
	}

	h.logger.Info("PUT /booking-flows/{id}/date - Date selected: flow_id=%s, date=%s", flowID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleSelectSlot PUT /api/v1/booking-flows/{flowId}/slot
func (h *Handler) HandleSelectSlot(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-flows/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.SlotKey == "" {
		h.logger.Warn("PUT /booking-flows/{id}/slot - Missing slot key: flow_id=%s", flowID)
		handlers.RespondBadRequest(w, msgMissingSlotKey)
		return
	}

	result, err := h.service.SelectSlot(r.Context(), flowID, req.SlotKey)
	if err != nil {
		h.respondFlowError(w, r, flowID, err)
		return
	}

	h.logger.Info("PUT /booking-flows/{id}/slot - Slot selected: flow_id=%s, slot=%s", flowID, req.SlotKey)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleReset POST /api/v1/booking-flows/{flowId}/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	flowID := mux.Vars(r)["flowId"]

	result, err := h.service.Reset(r.Context(), flowID)
	if err != nil {
		h.respondFlowError(w, r, flowID, err)
		return
	}

	h.logger.Info("POST /booking-flows/{id}/reset - Flow reset: flow_id=%s", flowID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// respondFlowError транслирует ошибки сервиса в HTTP-ответы
func (h *Handler) respondFlowError(w http.ResponseWriter, r *http.Request, flowID string, err error) {
	switch {
	case errors.Is(err, bookingflow.ErrFlowNotFound):
		h.logger.Warn("%s %s - Flow not found: flow_id=%s", r.Method, r.URL.Path, flowID)
		handlers.RespondNotFound(w, msgFlowNotFound)

	case errors.Is(err, bookingflow.ErrNoDateSelected):
		h.logger.Warn("%s %s - No date selected: flow_id=%s", r.Method, r.URL.Path, flowID)
		handlers.RespondBadRequest(w, msgNoDateSelected)

	case errors.Is(err, bookingflow.ErrSlotNotFound):
		h.logger.Warn("%s %s - Slot not found: flow_id=%s", r.Method, r.URL.Path, flowID)
		handlers.RespondNotFound(w, msgSlotNotFound)

	case errors.Is(err, bookingflow.ErrSlotUnavailable):
		h.logger.Warn("%s %s - Slot unavailable: flow_id=%s", r.Method, r.URL.Path, flowID)
		handlers.RespondConflict(w, msgSlotUnavailable)

	case errors.Is(err, bookingflow.ErrInvalidInput):
		h.logger.Warn("%s %s - Invalid input: flow_id=%s, error=%v", r.Method, r.URL.Path, flowID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s %s - Flow error: flow_id=%s, error=%v", r.Method, r.URL.Path, flowID, err)
		handlers.RespondInternalError(w)
	}
}
