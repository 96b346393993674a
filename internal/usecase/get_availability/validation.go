package get_availability

import (
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to dates are required", ErrInvalidInput)
	}

	if req.To.Before(req.From) {
		return fmt.Errorf("%w: to is before from", ErrInvalidDateRange)
	}

	// Ограничиваем размер периода, чтобы один запрос не строил календарь на годы
	days := int(startOfDay(req.To).Sub(startOfDay(req.From)).Hours()/24) + 1
	if days > domain.MaxAvailabilityRangeDays {
		return fmt.Errorf("%w: range of %d days exceeds maximum of %d",
			ErrInvalidDateRange, days, domain.MaxAvailabilityRangeDays)
	}

	return nil
}
