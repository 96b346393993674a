package save_time_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	slotRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/ptr"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// UseCase use case для создания или обновления временного слота
type UseCase struct {
	slotRepo     TimeSlotRepository
	settingsRepo SettingsRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo TimeSlotRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Execute выполняет use case сохранения слота (create-or-update)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveTimeSlot: id=%d, kind=%s, start=%s, end=%s, enabled=%t",
		req.SlotID, req.Kind, req.Start, req.End, req.Enabled)

	// 1. Валидация входных данных (формат HH:MM, порядок границ, поля вида)
	start, end, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SaveTimeSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем рабочее окно студии
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("SaveTimeSlot: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if err := validateWorkingWindow(start, end, settings); err != nil {
		uc.logger.Warn("SaveTimeSlot: %v", err)
		return nil, err
	}

	// 3. Проверяем, что ID не занят слотом другого вида
	if err := uc.checkKindOwnership(ctx, req); err != nil {
		return nil, err
	}

	// 4. Собираем пул существующих интервалов затронутого дня
	// (регулярные и разовые, сведенные в один список)
	pool, err := uc.collectPool(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Проверяем пересечения. Собственный прежний интервал слота
	// исключается из пула, чтобы слот не конфликтовал сам с собой
	// при редактировании
	candidate := domain.TimeSlot{ID: req.SlotID, StartTime: start, EndTime: end}
	if domain.HasConflict(candidate, pool, ptr.Ptr(req.SlotID)) {
		uc.logger.Warn("SaveTimeSlot: slot id=%d %s-%s conflicts with an existing slot",
			req.SlotID, start, end)
		return nil, ErrSlotConflict
	}

	// 6. Сохраняем слот
	resp, err := uc.save(ctx, req, start, end)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveTimeSlot: saved %s slot id=%d %s-%s", resp.Kind, resp.ID, start, end)
	return resp, nil
}

// checkKindOwnership проверяет, что ID слота не принадлежит слоту другого вида.
// ID выдаются из общего счетчика, поэтому пересечений по видам быть не должно.
func (uc *UseCase) checkKindOwnership(ctx context.Context, req *Request) error {
	var err error
	switch req.Kind {
	case domain.SlotKindRegular:
		_, err = uc.slotRepo.GetSpecialByID(ctx, req.SlotID)
	case domain.SlotKindSpecial:
		_, err = uc.slotRepo.GetRegularByID(ctx, req.SlotID)
	}

	if err == nil {
		uc.logger.Warn("SaveTimeSlot: id=%d already belongs to another slot kind", req.SlotID)
		return ErrSlotKindMismatch
	}
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		return nil
	}

	uc.logger.Error("SaveTimeSlot: failed to check slot id=%d: %v", req.SlotID, err)
	return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
}

// collectPool возвращает интервалы, с которыми кандидат может пересечься.
// Для регулярного слота это регулярные слоты того же дня недели; для
// разового — разовые слоты той же даты плюс регулярные ее дня недели.
func (uc *UseCase) collectPool(ctx context.Context, req *Request) ([]domain.TimeSlot, error) {
	pool := make([]domain.TimeSlot, 0)

	switch req.Kind {
	case domain.SlotKindRegular:
		regular, err := uc.slotRepo.ListRegularByWeekday(ctx, weekdayOf(req))
		if err != nil {
			uc.logger.Error("SaveTimeSlot: failed to list regular slots: %v", err)
			return nil, fmt.Errorf("%w: failed to list regular slots: %v", ErrInternal, err)
		}
		for _, slot := range regular {
			pool = append(pool, slot.Interval())
		}

	case domain.SlotKindSpecial:
		special, err := uc.slotRepo.ListSpecialByDate(ctx, *req.Date)
		if err != nil {
			uc.logger.Error("SaveTimeSlot: failed to list special slots: %v", err)
			return nil, fmt.Errorf("%w: failed to list special slots: %v", ErrInternal, err)
		}
		for _, slot := range special {
			pool = append(pool, slot.Interval())
		}

		regular, err := uc.slotRepo.ListRegularByWeekday(ctx, req.Date.Weekday())
		if err != nil {
			uc.logger.Error("SaveTimeSlot: failed to list regular slots: %v", err)
			return nil, fmt.Errorf("%w: failed to list regular slots: %v", ErrInternal, err)
		}
		for _, slot := range regular {
			// Регулярные интервалы в пуле разового дня: ID разных видов
			// не пересекаются, поэтому исключение по ID безопасно
			pool = append(pool, slot.Interval())
		}
	}

	return pool, nil
}

// save сохраняет кандидата как слот соответствующего вида
func (uc *UseCase) save(ctx context.Context, req *Request, start, end types.TimeString) (*Response, error) {
	switch req.Kind {
	case domain.SlotKindRegular:
		saved, err := uc.slotRepo.SaveRegular(ctx, &domain.RegularSlot{
			ID:        req.SlotID,
			Weekday:   weekdayOf(req),
			StartTime: start,
			EndTime:   end,
			Enabled:   req.Enabled,
		})
		if err != nil {
			uc.logger.Error("SaveTimeSlot: failed to save regular slot: %v", err)
			return nil, fmt.Errorf("%w: failed to save slot: %v", ErrInternal, err)
		}
		return fromRegular(saved), nil

	default:
		saved, err := uc.slotRepo.SaveSpecial(ctx, &domain.SpecialSlot{
			ID:        req.SlotID,
			Date:      *req.Date,
			StartTime: start,
			EndTime:   end,
			Enabled:   req.Enabled,
		})
		if err != nil {
			uc.logger.Error("SaveTimeSlot: failed to save special slot: %v", err)
			return nil, fmt.Errorf("%w: failed to save slot: %v", ErrInternal, err)
		}
		return fromSpecial(saved), nil
	}
}

// weekdayOf возвращает день недели регулярного кандидата.
// Вызывается только после validateRequest, поэтому Weekday не nil.
func weekdayOf(req *Request) time.Weekday {
	return time.Weekday(*req.Weekday)
}
