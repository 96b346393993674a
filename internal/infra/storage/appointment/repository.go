package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
)

// Repository хранилище записей на фотосессии в памяти процесса.
// Данные живут в пределах жизни процесса (персистентность — non-goal).
type Repository struct {
	mu           sync.RWMutex
	appointments map[int64]domain.Appointment
	nextID       int64
}

// NewRepository создает пустое хранилище записей
func NewRepository() *Repository {
	return &Repository{
		appointments: make(map[int64]domain.Appointment),
		nextID:       1,
	}
}

// Create создает новую запись и присваивает ей ID
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	stored := *appt
	stored.ID = r.nextID
	r.nextID++
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.appointments[stored.ID] = stored
	result := stored
	return &result, nil
}

// GetByID возвращает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appt, ok := r.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	result := appt
	return &result, nil
}

// GetByUserID возвращает записи пользователя, опционально по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if appt.UserID != userID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		a := appt
		result = append(result, &a)
	}
	sortAppointments(result)
	return result, nil
}

// GetWithFilter возвращает записи по фильтру администратора
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if !matchesFilter(&appt, filter) {
			continue
		}
		a := appt
		result = append(result, &a)
	}
	sortAppointments(result)
	return result, nil
}

// GetActiveByDate возвращает активные записи (pending/confirmed) на дату.
// Используется при подсчёте доступности слотов.
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range r.appointments {
		if !appt.IsActive() || !sameDay(appt.Date, date) {
			continue
		}
		a := appt
		result = append(result, &a)
	}
	sortAppointments(result)
	return result, nil
}

// UpdateStatus обновляет статус записи.
// Допустимость перехода проверяет вызывающая сторона; здесь только
// валидность самого статуса и существование записи.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus, reason *string) (*domain.Appointment, error) {
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusRejected, domain.StatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	appt, ok := r.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	now := time.Now()
	appt.Status = status
	appt.UpdatedAt = now
	if status == domain.StatusRejected {
		appt.RejectionReason = reason
	}
	if status == domain.StatusCancelled {
		appt.CancelledAt = &now
	}

	r.appointments[id] = appt
	result := appt
	return &result, nil
}

func matchesFilter(appt *domain.Appointment, filter domain.AppointmentsFilter) bool {
	if !filter.IncludeInactive && !appt.IsActive() && filter.Status == nil {
		return false
	}
	if filter.Status != nil && appt.Status != *filter.Status {
		return false
	}
	if filter.StartDate != nil && appt.Date.Before(startOfDay(*filter.StartDate)) {
		return false
	}
	if filter.EndDate != nil && appt.Date.After(endOfDay(*filter.EndDate)) {
		return false
	}
	return true
}

// sortAppointments сортирует по дате и времени начала, затем по ID
func sortAppointments(appts []*domain.Appointment) {
	sort.Slice(appts, func(i, j int) bool {
		if !sameDay(appts[i].Date, appts[j].Date) {
			return appts[i].Date.Before(appts[j].Date)
		}
		if appts[i].StartTime != appts[j].StartTime {
			return appts[i].StartTime.IsBefore(appts[j].StartTime)
		}
		return appts[i].ID < appts[j].ID
	})
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
