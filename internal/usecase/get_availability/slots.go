package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/schedulefeed"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/types"
)

// buildDay строит доступность одного календарного дня.
//
// Разовые слоты на дату полностью перекрывают регулярное недельное
// расписание этого дня. Слот доступен, если он включен администратором,
// не пересекается ни с одной активной записью и (для сегодняшнего дня)
// начинается не раньше, чем через minNoticeMinutes от текущего момента.
func (uc *UseCase) buildDay(ctx context.Context, date, now time.Time, minNoticeMinutes int) (*Day, error) {
	slots, err := uc.daySlots(ctx, date)
	if err != nil {
		return nil, err
	}

	// Прошедшие дни всегда без доступности
	if startOfDay(date).Before(startOfDay(now)) {
		for i := range slots {
			slots[i].Available = false
		}
		return newDay(date, slots), nil
	}

	// Активные записи занимают свои интервалы
	appointments, err := uc.apptRepo.GetActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	occupied := make([]domain.TimeSlot, 0, len(appointments))
	for _, appt := range appointments {
		occupied = append(occupied, appt.Interval())
	}

	for i := range slots {
		if !slots[i].Available {
			continue
		}
		// Пересечение с записью проверяем по строгим полуоткрытым
		// интервалам: граничащие интервалы не считаются пересечением
		if domain.HasConflict(slots[i], occupied, nil) {
			slots[i].Available = false
		}
	}

	// Для сегодняшнего дня отсекаем слоты, начинающиеся слишком скоро
	if sameDay(date, now) && minNoticeMinutes >= 0 {
		currentTime := types.NewTimeString(now)
		minAllowed, err := currentTime.AddMinutes(minNoticeMinutes)
		if err != nil {
			// Минимальное время ушло за полночь — сегодня уже не записаться
			for i := range slots {
				slots[i].Available = false
			}
			return newDay(date, slots), nil
		}
		for i := range slots {
			if slots[i].StartTime.IsBefore(minAllowed) {
				slots[i].Available = false
			}
		}
	}

	return newDay(date, slots), nil
}

// daySlots возвращает слоты дня: разовые при их наличии, иначе регулярные
func (uc *UseCase) daySlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	special, err := uc.slotRepo.ListSpecialByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list special slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list special slots: %v", ErrInternal, err)
	}

	if len(special) > 0 {
		slots := make([]domain.TimeSlot, 0, len(special))
		for _, s := range special {
			slots = append(slots, s.Interval())
		}
		return slots, nil
	}

	regular, err := uc.slotRepo.ListRegularByWeekday(ctx, date.Weekday())
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list regular slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list regular slots: %v", ErrInternal, err)
	}

	slots := make([]domain.TimeSlot, 0, len(regular))
	for _, s := range regular {
		slots = append(slots, s.Interval())
	}
	return slots, nil
}

// SlotsForDate возвращает слоты одного дня с учетом занятости.
// Используется booking flow для проверки выбранного пользователем слота.
func (uc *UseCase) SlotsForDate(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	now := uc.timeProvider.Now()

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	day, err := uc.buildDay(ctx, date, now, settings.MinBookingNoticeMinutes)
	if err != nil {
		return nil, err
	}

	slots := make([]domain.TimeSlot, 0, len(day.Slots))
	for _, s := range day.Slots {
		slots = append(slots, domain.TimeSlot{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
		})
	}
	return slots, nil
}

// convertSchedule конвертирует данные фида в domain-модели.
// Слоты с некорректным временем пропускаются с предупреждением,
// чтобы одна битая запись не ломала все расписание.
func (uc *UseCase) convertSchedule(schedule *schedulefeed.Schedule) ([]*domain.RegularSlot, []*domain.SpecialSlot) {
	regular := make([]*domain.RegularSlot, 0, len(schedule.Regular))
	for _, payload := range schedule.Regular {
		start, end, err := domain.ValidateSlotTimes(payload.Start, payload.End)
		if err != nil {
			uc.logger.Warn("GetAvailability: skipping invalid regular slot id=%d: %v", payload.ID, err)
			continue
		}
		if payload.Weekday < 0 || payload.Weekday > 6 {
			uc.logger.Warn("GetAvailability: skipping regular slot id=%d with weekday=%d", payload.ID, payload.Weekday)
			continue
		}
		regular = append(regular, &domain.RegularSlot{
			ID:        payload.ID,
			Weekday:   time.Weekday(payload.Weekday),
			StartTime: start,
			EndTime:   end,
			Enabled:   payload.Enabled,
		})
	}

	special := make([]*domain.SpecialSlot, 0, len(schedule.Special))
	for _, payload := range schedule.Special {
		start, end, err := domain.ValidateSlotTimes(payload.Start, payload.End)
		if err != nil {
			uc.logger.Warn("GetAvailability: skipping invalid special slot id=%d: %v", payload.ID, err)
			continue
		}
		date, err := time.Parse(domain.DateFormat, payload.Date)
		if err != nil {
			uc.logger.Warn("GetAvailability: skipping special slot id=%d with date=%q", payload.ID, payload.Date)
			continue
		}
		special = append(special, &domain.SpecialSlot{
			ID:        payload.ID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Enabled:   payload.Enabled,
		})
	}

	return regular, special
}

// newDay собирает Day из domain-слотов
func newDay(date time.Time, slots []domain.TimeSlot) *Day {
	day := &Day{
		Date:  date,
		Slots: make([]Slot, 0, len(slots)),
	}
	for _, s := range slots {
		day.Slots = append(day.Slots, Slot{
			Key:       s.Key(),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Available: s.Available,
		})
		if s.Available {
			day.HasAvailability = true
		}
	}
	return day
}

// fromDomainDays конвертирует готовый резервный набор в модель ответа
func fromDomainDays(days []domain.DaySlots) []Day {
	result := make([]Day, 0, len(days))
	for _, d := range days {
		result = append(result, *newDay(d.Date, d.Slots))
	}
	return result
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// startOfDay обнуляет время, чтобы сравнивать только даты
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
