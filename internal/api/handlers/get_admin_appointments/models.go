package get_admin_appointments

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(statusStr, dateStr, fromStr, toStr, includeInactiveStr string) (*models.GetAdminAppointmentsRequest, error) {
	req := &models.GetAdminAppointmentsRequest{
		IncludeInactive: false, // По умолчанию только активные
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// date задает период в один день, from/to — произвольный период
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if fromStr != "" {
			from, err := time.Parse(domain.DateFormat, fromStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &from
		}
		if toStr != "" {
			to, err := time.Parse(domain.DateFormat, toStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = &to
		}
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
