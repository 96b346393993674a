package save_time_slot

import (
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Ошибки формата и диапазона времени пробрасываются как domain-ошибки
// (ErrInvalidFormat, ErrInvalidRange), чтобы handler показал их по полям.
func validateRequest(req *Request) (types.TimeString, types.TimeString, error) {
	if req.SlotID <= 0 {
		return "", "", fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}

	switch req.Kind {
	case domain.SlotKindRegular:
		if req.Weekday == nil {
			return "", "", fmt.Errorf("%w: weekday is required for a regular slot", ErrInvalidInput)
		}
		if *req.Weekday < 0 || *req.Weekday > 6 {
			return "", "", fmt.Errorf("%w: weekday must be in [0..6]", ErrInvalidInput)
		}
	case domain.SlotKindSpecial:
		if req.Date == nil || req.Date.IsZero() {
			return "", "", fmt.Errorf("%w: date is required for a special slot", ErrInvalidInput)
		}
	default:
		return "", "", fmt.Errorf("%w: unknown slot kind %q", ErrInvalidInput, req.Kind)
	}

	// Формат и порядок границ: нулевые и перевернутые слоты отбрасываются
	// здесь, до проверки пересечений
	start, end, err := domain.ValidateSlotTimes(req.Start, req.End)
	if err != nil {
		return "", "", err
	}

	return start, end, nil
}

// validateWorkingWindow проверяет, что слот укладывается в рабочее окно студии
func validateWorkingWindow(start, end types.TimeString, settings *domain.StudioSettings) error {
	if start.IsBefore(settings.OpenTime) || settings.CloseTime.IsBefore(end) {
		return fmt.Errorf("%w: %s-%s is outside %s-%s",
			ErrOutsideWorkingHours, start, end, settings.OpenTime, settings.CloseTime)
	}
	return nil
}
