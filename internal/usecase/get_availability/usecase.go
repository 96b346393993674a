package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/schedulefeed"
)

// UseCase use case для получения доступности студии по дням
type UseCase struct {
	slotRepo     TimeSlotRepository
	apptRepo     AppointmentRepository
	settingsRepo SettingsRepository
	feedClient   ScheduleFeedClient // nil, если фид выключен
	fallback     FallbackProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// feedClient может быть nil — тогда используется только локальное хранилище.
func NewUseCase(
	slotRepo TimeSlotRepository,
	apptRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	feedClient ScheduleFeedClient,
	fallback FallbackProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		apptRepo:     apptRepo,
		settingsRepo: settingsRepo,
		feedClient:   feedClient,
		fallback:     fallback,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности на период
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: from=%s, to=%s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Если хранилище пустое — пробуем подтянуть расписание из фида.
	// При недоступности фида отдаем резервный набор, чтобы календарь
	// оставался рабочим (ошибка сети не фатальна для страницы).
	degraded, err := uc.ensureSchedule(ctx)
	if err != nil {
		return nil, err
	}
	if degraded {
		days := uc.fallback.DefaultDays(now)
		uc.logger.Warn("GetAvailability: serving fallback dataset, days=%d", len(days))
		return &Response{Days: fromDomainDays(days), Degraded: true}, nil
	}

	// 4. Получаем настройки студии (минимальное время до записи)
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 5. Строим доступность по каждому дню периода
	days := make([]Day, 0)
	for date := startOfDay(req.From); !date.After(startOfDay(req.To)); date = date.AddDate(0, 0, 1) {
		day, err := uc.buildDay(ctx, date, now, settings.MinBookingNoticeMinutes)
		if err != nil {
			return nil, err
		}
		days = append(days, *day)
	}

	uc.logger.Info("GetAvailability: built %d days", len(days))
	return &Response{Days: days}, nil
}

// ensureSchedule подтягивает расписание из фида при пустом хранилище.
// Возвращает degraded=true, когда фид недоступен и нужен резервный набор.
func (uc *UseCase) ensureSchedule(ctx context.Context) (bool, error) {
	empty, err := uc.slotRepo.IsEmpty(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to check slot storage: %v", err)
		return false, fmt.Errorf("%w: failed to check slot storage: %v", ErrInternal, err)
	}
	if !empty || uc.feedClient == nil {
		return false, nil
	}

	schedule, err := uc.feedClient.FetchScheduleWithGracefulDegradation(ctx)
	if err != nil {
		if errors.Is(err, schedulefeed.ErrFeedDegraded) {
			return true, nil
		}
		uc.logger.Error("GetAvailability: feed error: %v", err)
		return false, fmt.Errorf("%w: feed error: %v", ErrInternal, err)
	}

	regular, special := uc.convertSchedule(schedule)
	if err := uc.slotRepo.ReplaceAll(ctx, regular, special); err != nil {
		uc.logger.Error("GetAvailability: failed to store schedule: %v", err)
		return false, fmt.Errorf("%w: failed to store schedule: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: schedule refreshed from feed: %d regular, %d special",
		len(regular), len(special))
	return false, nil
}
