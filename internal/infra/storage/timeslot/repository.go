package timeslot

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Repository хранилище слотов в памяти процесса.
//
// Персистентность намеренно отсутствует: данные живут ровно столько,
// сколько живет процесс, и изменяются только явными административными
// действиями либо обновлением из календарного фида.
// ID регулярных и разовых слотов выдаются из общего счетчика, поэтому
// идентификатор однозначно определяет слот независимо от его вида.
type Repository struct {
	mu      sync.RWMutex
	regular map[int64]domain.RegularSlot
	special map[int64]domain.SpecialSlot
	nextID  int64
}

// NewRepository создает пустое хранилище слотов
func NewRepository() *Repository {
	return &Repository{
		regular: make(map[int64]domain.RegularSlot),
		special: make(map[int64]domain.SpecialSlot),
		nextID:  1,
	}
}

// IsEmpty возвращает true, если хранилище не содержит ни одного слота
func (r *Repository) IsEmpty(ctx context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.regular) == 0 && len(r.special) == 0, nil
}

// ListRegular возвращает все регулярные слоты
func (r *Repository) ListRegular(ctx context.Context) ([]*domain.RegularSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RegularSlot, 0, len(r.regular))
	for _, slot := range r.regular {
		s := slot
		result = append(result, &s)
	}
	sortRegular(result)
	return result, nil
}

// ListRegularByWeekday возвращает регулярные слоты на указанный день недели
func (r *Repository) ListRegularByWeekday(ctx context.Context, weekday time.Weekday) ([]*domain.RegularSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.RegularSlot, 0)
	for _, slot := range r.regular {
		if slot.Weekday == weekday {
			s := slot
			result = append(result, &s)
		}
	}
	sortRegular(result)
	return result, nil
}

// ListSpecial возвращает все разовые слоты
func (r *Repository) ListSpecial(ctx context.Context) ([]*domain.SpecialSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.SpecialSlot, 0, len(r.special))
	for _, slot := range r.special {
		s := slot
		result = append(result, &s)
	}
	sortSpecial(result)
	return result, nil
}

// ListSpecialByDate возвращает разовые слоты на указанную дату
func (r *Repository) ListSpecialByDate(ctx context.Context, date time.Time) ([]*domain.SpecialSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.SpecialSlot, 0)
	for _, slot := range r.special {
		if sameDay(slot.Date, date) {
			s := slot
			result = append(result, &s)
		}
	}
	sortSpecial(result)
	return result, nil
}

// GetRegularByID возвращает регулярный слот по ID
func (r *Repository) GetRegularByID(ctx context.Context, id int64) (*domain.RegularSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.regular[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	s := slot
	return &s, nil
}

// GetSpecialByID возвращает разовый слот по ID
func (r *Repository) GetSpecialByID(ctx context.Context, id int64) (*domain.SpecialSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.special[id]
	if !ok {
		return nil, ErrSlotNotFound
	}
	s := slot
	return &s, nil
}

// SaveRegular создает или обновляет регулярный слот.
// ID == 0 означает создание нового слота.
func (r *Repository) SaveRegular(ctx context.Context, slot *domain.RegularSlot) (*domain.RegularSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *slot

	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
		stored.CreatedAt = now
	} else if existing, ok := r.regular[stored.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		// Явный ID, которого еще нет — создание с сохранением ID
		stored.CreatedAt = now
		if stored.ID >= r.nextID {
			r.nextID = stored.ID + 1
		}
	}
	stored.UpdatedAt = now

	r.regular[stored.ID] = stored
	result := stored
	return &result, nil
}

// SaveSpecial создает или обновляет разовый слот
func (r *Repository) SaveSpecial(ctx context.Context, slot *domain.SpecialSlot) (*domain.SpecialSlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *slot

	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
		stored.CreatedAt = now
	} else if existing, ok := r.special[stored.ID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
		if stored.ID >= r.nextID {
			r.nextID = stored.ID + 1
		}
	}
	stored.UpdatedAt = now

	r.special[stored.ID] = stored
	result := stored
	return &result, nil
}

// Delete удаляет слот по ID независимо от его вида
func (r *Repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.regular[id]; ok {
		delete(r.regular, id)
		return nil
	}
	if _, ok := r.special[id]; ok {
		delete(r.special, id)
		return nil
	}
	return ErrSlotNotFound
}

// ReplaceAll атомарно заменяет содержимое хранилища набором из фида
func (r *Repository) ReplaceAll(ctx context.Context, regular []*domain.RegularSlot, special []*domain.SpecialSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.regular = make(map[int64]domain.RegularSlot, len(regular))
	r.special = make(map[int64]domain.SpecialSlot, len(special))
	r.nextID = 1

	for _, slot := range regular {
		stored := *slot
		if stored.ID == 0 {
			stored.ID = r.nextID
		}
		if stored.ID >= r.nextID {
			r.nextID = stored.ID + 1
		}
		stored.CreatedAt = now
		stored.UpdatedAt = now
		r.regular[stored.ID] = stored
	}
	for _, slot := range special {
		stored := *slot
		if stored.ID == 0 {
			stored.ID = r.nextID
		}
		if stored.ID >= r.nextID {
			r.nextID = stored.ID + 1
		}
		stored.CreatedAt = now
		stored.UpdatedAt = now
		r.special[stored.ID] = stored
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// sortRegular сортирует по дню недели, затем по времени начала
func sortRegular(slots []*domain.RegularSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Weekday != slots[j].Weekday {
			return slots[i].Weekday < slots[j].Weekday
		}
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}

// sortSpecial сортирует по дате, затем по времени начала
func sortSpecial(slots []*domain.SpecialSlot) {
	sort.Slice(slots, func(i, j int) bool {
		if !sameDay(slots[i].Date, slots[j].Date) {
			return slots[i].Date.Before(slots[j].Date)
		}
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})
}
