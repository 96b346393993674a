package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	apptRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/PhotoStudio-BookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями на фотосессии
type Service struct {
	apptRepo  AppointmentRepository
	notifRepo NotificationRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	notifRepo NotificationRepository,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:  apptRepo,
		notifRepo: notifRepo,
		logger:    logger,
	}
}

// GetByID получает запись по ID
// Пользователь видит только свою запись, администратор — любую
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && appt.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments получает историю записей пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appts, err := s.apptRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for user=%d", len(appts), req.UserID)
	return models.FromDomainAppointmentList(appts), nil
}

// GetAdminAppointments получает записи с гибкой фильтрацией.
// Доступно только администраторам; права проверяет API-слой.
//
// Примеры использования:
// - Все активные записи: GetAdminAppointments(ctx, &GetAdminAppointmentsRequest{})
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Только ожидающие подтверждения: Status = "pending"
// - Включая отклонённые и отменённые: IncludeInactive = true
func (s *Service) GetAdminAppointments(ctx context.Context, req *models.GetAdminAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetAdminAppointments: fetching appointments, status=%v, includeInactive=%t",
		req.Status, req.IncludeInactive)

	filter := domain.AppointmentsFilter{
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: req.IncludeInactive,
	}
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetAdminAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appts, err := s.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetAdminAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAdminAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAdminAppointments: fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts), nil
}

// UpdateStatus меняет статус записи с проверкой допустимости перехода.
// Отклонение требует указанной причины. Смена статуса фиксируется
// в истории уведомлений по включенным правилам.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> %s", req.ID, req.Status)

	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, req.ID)
		return nil, ErrInvalidStatus
	}

	if next == domain.StatusRejected && (req.Reason == nil || strings.TrimSpace(*req.Reason) == "") {
		s.logger.Warn("UpdateStatus: rejection without reason for appointment id=%d", req.ID)
		return nil, ErrReasonRequired
	}

	appt, err := s.getAppointment(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if !appt.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appt.Status, next, req.ID)
		return nil, ErrInvalidTransition
	}

	updated, err := s.apptRepo.UpdateStatus(ctx, req.ID, next, req.Reason)
	if err != nil {
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.recordStatusChange(ctx, updated)

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", updated.ID, updated.Status)
	return models.FromDomainAppointment(updated), nil
}

// Cancel отменяет запись от имени ее владельца
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: appointment id=%d by user=%d", id, userID)

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if appt.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to appointment id=%d", userID, id)
		return nil, ErrAccessDenied
	}
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d in status %s cannot be cancelled", id, appt.Status)
		return nil, ErrCannotCancel
	}

	updated, err := s.apptRepo.UpdateStatus(ctx, id, domain.StatusCancelled, nil)
	if err != nil {
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.recordStatusChange(ctx, updated)

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return models.FromDomainAppointment(updated), nil
}

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return appt, nil
}

// recordStatusChange фиксирует смену статуса в истории уведомлений.
// Ошибки истории не откатывают смену статуса.
func (s *Service) recordStatusChange(ctx context.Context, appt *domain.Appointment) {
	rules, err := s.notifRepo.GetEnabledRulesByEvent(ctx, domain.EventStatusChanged)
	if err != nil {
		s.logger.Error("recordStatusChange: failed to get notification rules: %v", err)
		return
	}

	for _, rule := range rules {
		recipient := appt.Email
		if rule.Channel == domain.ChannelSMS {
			recipient = appt.Phone
		}
		record := &domain.NotificationRecord{
			RuleID:        rule.ID,
			AppointmentID: appt.ID,
			Channel:       rule.Channel,
			Recipient:     recipient,
			Message:       renderStatusMessage(rule.Template, appt),
		}
		if _, err := s.notifRepo.AppendRecord(ctx, record); err != nil {
			s.logger.Error("recordStatusChange: failed to record notification for rule id=%d: %v",
				rule.ID, err)
		}
	}
}

// renderStatusMessage подставляет данные записи в шаблон правила
func renderStatusMessage(template string, appt *domain.Appointment) string {
	replacer := strings.NewReplacer(
		"{name}", appt.Name,
		"{date}", appt.Date.Format(domain.DateFormat),
		"{start}", appt.StartTime.String(),
		"{end}", appt.EndTime.String(),
		"{status}", string(appt.Status),
	)
	return replacer.Replace(template)
}
