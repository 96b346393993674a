package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	flowService "github.com/m04kA/PhotoStudio-BookingService/internal/service/bookingflow"
)

// UseCase use case для создания записи на фотосессию
type UseCase struct {
	apptRepo     AppointmentRepository
	notifRepo    NotificationRepository
	settingsRepo SettingsRepository
	availability AvailabilityChecker
	flow         FlowService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	notifRepo NotificationRepository,
	settingsRepo SettingsRepository,
	availability AvailabilityChecker,
	flow FlowService,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		notifRepo:    notifRepo,
		settingsRepo: settingsRepo,
		availability: availability,
		flow:         flow,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Доступность выбранного слота перепроверяется на момент отправки,
// так как между выбором и подтверждением слот мог занять другой клиент.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: flow=%s, user=%d, type=%s", req.FlowID, req.UserID, req.Type)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем выбор пользователя из booking flow
	selection, err := uc.flow.Selection(ctx, req.FlowID)
	if err != nil {
		if errors.Is(err, flowService.ErrFlowNotFound) {
			uc.logger.Warn("BookAppointment: flow %s not found", req.FlowID)
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("BookAppointment: failed to get flow %s: %v", req.FlowID, err)
		return nil, fmt.Errorf("%w: failed to get booking flow: %v", ErrInternal, err)
	}
	if selection.State() != domain.DateAndSlotSelected {
		uc.logger.Warn("BookAppointment: flow %s has incomplete selection", req.FlowID)
		return nil, ErrIncompleteSelection
	}

	date := selection.Date()
	slotKey := selection.SlotKey()

	// 3. Проверяем горизонт записи
	now := uc.timeProvider.Now()
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings.HasAdvanceBookingLimit() {
		horizon := now.AddDate(0, 0, settings.AdvanceBookingDays)
		if date.After(horizon) {
			uc.logger.Warn("BookAppointment: date %s is beyond the %d-day horizon",
				date.Format(domain.DateFormat), settings.AdvanceBookingDays)
			return nil, ErrDateTooFarAhead
		}
	}

	// 4. Перепроверяем доступность выбранного слота
	slots, err := uc.availability.SlotsForDate(ctx, date)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to get slots for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get slots: %v", ErrInternal, err)
	}
	slot, err := findSlot(slots, slotKey)
	if err != nil {
		uc.logger.Warn("BookAppointment: slot %s on %s: %v",
			slotKey, date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 5. Создаем запись в статусе pending
	created, err := uc.apptRepo.Create(ctx, &domain.Appointment{
		UserID:       req.UserID,
		Name:         strings.TrimSpace(req.Name),
		Phone:        req.Phone,
		Email:        req.Email,
		Type:         req.Type,
		Date:         date,
		StartTime:    slot.StartTime,
		EndTime:      slot.EndTime,
		Status:       domain.StatusPending,
		Photographer: req.Photographer,
		Notes:        req.Notes,
	})
	if err != nil {
		uc.logger.Error("BookAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	// 6. Фиксируем уведомления по включенным правилам.
	// Ошибки истории не откатывают созданную запись
	uc.recordNotifications(ctx, created)

	// 7. Завершаем booking flow
	if err := uc.flow.Complete(ctx, req.FlowID); err != nil {
		uc.logger.Warn("BookAppointment: failed to complete flow %s: %v", req.FlowID, err)
	}

	uc.logger.Info("BookAppointment: created appointment id=%d for %s %s",
		created.ID, created.Date.Format(domain.DateFormat), created.StartTime)
	return fromAppointment(created), nil
}

// findSlot находит слот по ключу и проверяет его доступность
func findSlot(slots []domain.TimeSlot, slotKey string) (*domain.TimeSlot, error) {
	for i := range slots {
		if slots[i].Key() != slotKey {
			continue
		}
		if !slots[i].Available {
			return nil, ErrSlotUnavailable
		}
		return &slots[i], nil
	}
	return nil, ErrSlotNotFound
}

// recordNotifications добавляет записи в историю уведомлений по включенным
// правилам события appointment_created
func (uc *UseCase) recordNotifications(ctx context.Context, appt *domain.Appointment) {
	rules, err := uc.notifRepo.GetEnabledRulesByEvent(ctx, domain.EventAppointmentCreated)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to get notification rules: %v", err)
		return
	}

	for _, rule := range rules {
		record := &domain.NotificationRecord{
			RuleID:        rule.ID,
			AppointmentID: appt.ID,
			Channel:       rule.Channel,
			Recipient:     recipientFor(rule.Channel, appt),
			Message:       renderTemplate(rule.Template, appt),
		}
		if _, err := uc.notifRepo.AppendRecord(ctx, record); err != nil {
			uc.logger.Error("BookAppointment: failed to record notification for rule id=%d: %v",
				rule.ID, err)
		}
	}
}

func recipientFor(channel domain.NotificationChannel, appt *domain.Appointment) string {
	if channel == domain.ChannelSMS {
		return appt.Phone
	}
	return appt.Email
}

// renderTemplate подставляет данные записи в шаблон правила
func renderTemplate(template string, appt *domain.Appointment) string {
	replacer := strings.NewReplacer(
		"{name}", appt.Name,
		"{date}", appt.Date.Format(domain.DateFormat),
		"{start}", appt.StartTime.String(),
		"{end}", appt.EndTime.String(),
	)
	return replacer.Replace(template)
}
