package timeslots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/timeslots/models"
)

// Service сервис для работы с расписанием студии
type Service struct {
	slotRepo TimeSlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(slotRepo TimeSlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// ListRegular возвращает регулярное недельное расписание
func (s *Service) ListRegular(ctx context.Context) (*models.RegularSlotListResponse, error) {
	slots, err := s.slotRepo.ListRegular(ctx)
	if err != nil {
		s.logger.Error("ListRegular: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRegular - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRegularList(slots), nil
}

// ListSpecial возвращает разовые слоты на конкретные даты
func (s *Service) ListSpecial(ctx context.Context) (*models.SpecialSlotListResponse, error) {
	slots, err := s.slotRepo.ListSpecial(ctx)
	if err != nil {
		s.logger.Error("ListSpecial: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSpecial - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpecialList(slots), nil
}

// Delete удаляет слот любого вида по ID
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting slot id=%d", id)

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot id=%d deleted", id)
	return nil
}
