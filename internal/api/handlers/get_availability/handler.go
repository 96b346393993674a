package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers"
	getAvailability "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingPeriod = "параметры from и to обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange  = "некорректный период запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /availability - Missing from/to params")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	useCaseReq, err := ToUseCaseRequest(fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput),
			errors.Is(err, getAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /availability - Invalid range: from=%s, to=%s, error=%v", fromStr, toStr, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /availability - Failed to get availability: from=%s, to=%s, error=%v",
				fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Availability retrieved: from=%s, to=%s, days=%d, degraded=%t",
		fromStr, toStr, len(response.Days), response.Degraded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
