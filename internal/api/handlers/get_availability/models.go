package get_availability

import (
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	getAvailability "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_availability"
)

// AvailabilityResponse ответ с доступностью по дням периода
type AvailabilityResponse struct {
	Days     []DayResponse `json:"days"`
	Degraded bool          `json:"degraded"` // Ответ построен из резервных данных
}

// DayResponse доступность одного календарного дня
type DayResponse struct {
	Date            string         `json:"date"` // "2026-08-24"
	Slots           []SlotResponse `json:"slots"`
	HasAvailability bool           `json:"hasAvailability"`
}

// SlotResponse временной слот дня
type SlotResponse struct {
	Key       string `json:"key"` // "HH:MM-HH:MM"
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest формирует запрос к use case из query параметров
func ToUseCaseRequest(fromStr, toStr string) (*getAvailability.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}
	return &getAvailability.Request{From: from, To: to}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель
func FromUseCaseResponse(result *getAvailability.Response) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		Days:     make([]DayResponse, 0, len(result.Days)),
		Degraded: result.Degraded,
	}
	for _, day := range result.Days {
		dayResp := DayResponse{
			Date:            day.Date.Format(domain.DateFormat),
			Slots:           make([]SlotResponse, 0, len(day.Slots)),
			HasAvailability: day.HasAvailability,
		}
		for _, slot := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, SlotResponse{
				Key:       slot.Key,
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
				Available: slot.Available,
			})
		}
		resp.Days = append(resp.Days, dayResp)
	}
	return resp
}
