package bookingflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/bookingflow/models"
)

// DefaultFlowTTL время жизни flow без активности
const DefaultFlowTTL = 30 * time.Minute

type flowEntry struct {
	selection *domain.Selection
	expiresAt time.Time
}

// Service сервис booking flow: хранит выбор даты и слота по сессиям.
// Сессии живут в памяти и истекают лениво, при очередном обращении.
type Service struct {
	mu    sync.RWMutex
	flows map[string]*flowEntry

	availability AvailabilityChecker
	timeProvider TimeProvider
	ttl          time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса booking flow
func NewService(availability AvailabilityChecker, logger Logger) *Service {
	return &Service{
		flows:        make(map[string]*flowEntry),
		availability: availability,
		timeProvider: &RealTimeProvider{},
		ttl:          DefaultFlowTTL,
		logger:       logger,
	}
}

// Start создает новый flow с пустым выбором
func (s *Service) Start(ctx context.Context) (*models.FlowResponse, error) {
	flowID := uuid.NewString()
	now := s.timeProvider.Now()

	entry := &flowEntry{
		selection: domain.NewSelection(),
		expiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sweepLocked(now)
	s.flows[flowID] = entry
	s.mu.Unlock()

	s.logger.Info("Start: created flow %s", flowID)
	return models.FromSelection(flowID, entry.selection, entry.expiresAt), nil
}

// Get возвращает текущее состояние flow
func (s *Service) Get(ctx context.Context, flowID string) (*models.FlowResponse, error) {
	s.mu.RLock()
	entry, err := s.lookupLocked(flowID)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	return models.FromSelection(flowID, entry.selection, entry.expiresAt), nil
}

// SelectDate выбирает дату. Ранее выбранный слот всегда сбрасывается:
// ключ слота имеет смысл только в паре со своей датой.
func (s *Service) SelectDate(ctx context.Context, flowID string, date time.Time) (*models.FlowResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookupLocked(flowID)
	if err != nil {
		return nil, err
	}

	entry.selection.SelectDate(date)
	entry.expiresAt = s.timeProvider.Now().Add(s.ttl)

	s.logger.Info("SelectDate: flow %s, date %s", flowID, date.Format(domain.DateFormat))
	return models.FromSelection(flowID, entry.selection, entry.expiresAt), nil
}

// SelectSlot выбирает слот по ключу "HH:MM-HH:MM". Требует выбранной даты
// и проверяет, что слот существует в расписании дня и свободен.
func (s *Service) SelectSlot(ctx context.Context, flowID string, slotKey string) (*models.FlowResponse, error) {
	if slotKey == "" {
		return nil, fmt.Errorf("%w: slot key is required", ErrInvalidInput)
	}

	s.mu.Lock()
	entry, err := s.lookupLocked(flowID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if entry.selection.State() == domain.NoneSelected {
		s.mu.Unlock()
		s.logger.Warn("SelectSlot: flow %s has no selected date", flowID)
		return nil, ErrNoDateSelected
	}
	date := entry.selection.Date()
	s.mu.Unlock()

	// Доступность проверяем вне блокировки: поход в расписание
	// может оказаться небыстрым
	if err := s.checkSlot(ctx, date, slotKey); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err = s.lookupLocked(flowID)
	if err != nil {
		return nil, err
	}
	if err := entry.selection.SelectSlot(slotKey); err != nil {
		return nil, ErrNoDateSelected
	}
	entry.expiresAt = s.timeProvider.Now().Add(s.ttl)

	s.logger.Info("SelectSlot: flow %s, slot %s", flowID, slotKey)
	return models.FromSelection(flowID, entry.selection, entry.expiresAt), nil
}

// Reset сбрасывает выбор flow в исходное состояние
func (s *Service) Reset(ctx context.Context, flowID string) (*models.FlowResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.lookupLocked(flowID)
	if err != nil {
		return nil, err
	}

	entry.selection.Reset()
	entry.expiresAt = s.timeProvider.Now().Add(s.ttl)

	s.logger.Info("Reset: flow %s", flowID)
	return models.FromSelection(flowID, entry.selection, entry.expiresAt), nil
}

// Selection возвращает копию текущего выбора flow.
// Используется при создании записи.
func (s *Service) Selection(ctx context.Context, flowID string) (*domain.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, err := s.lookupLocked(flowID)
	if err != nil {
		return nil, err
	}

	snapshot := *entry.selection
	return &snapshot, nil
}

// Complete завершает flow после успешной записи и удаляет сессию
func (s *Service) Complete(ctx context.Context, flowID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookupLocked(flowID); err != nil {
		return err
	}

	delete(s.flows, flowID)
	s.logger.Info("Complete: flow %s finished", flowID)
	return nil
}

// checkSlot проверяет, что слот существует в расписании дня и свободен
func (s *Service) checkSlot(ctx context.Context, date time.Time, slotKey string) error {
	slots, err := s.availability.SlotsForDate(ctx, date)
	if err != nil {
		s.logger.Error("SelectSlot: failed to get slots for %s: %v",
			date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}

	for _, slot := range slots {
		if slot.Key() != slotKey {
			continue
		}
		if !slot.Available {
			s.logger.Warn("SelectSlot: slot %s on %s is not available",
				slotKey, date.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}
		return nil
	}

	s.logger.Warn("SelectSlot: slot %s does not exist on %s",
		slotKey, date.Format(domain.DateFormat))
	return ErrSlotNotFound
}

// lookupLocked находит живой flow. Вызывается под блокировкой.
// Истекший flow считается отсутствующим; удаление истекших делает sweepLocked.
func (s *Service) lookupLocked(flowID string) (*flowEntry, error) {
	entry, ok := s.flows[flowID]
	if !ok {
		return nil, ErrFlowNotFound
	}
	if s.timeProvider.Now().After(entry.expiresAt) {
		return nil, ErrFlowNotFound
	}
	return entry, nil
}

// sweepLocked удаляет истекшие flow. Вызывается под write-блокировкой.
func (s *Service) sweepLocked(now time.Time) {
	for id, entry := range s.flows {
		if now.After(entry.expiresAt) {
			delete(s.flows, id)
		}
	}
}
