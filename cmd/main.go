package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingFlowHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/booking_flow"
	cancelAppointmentHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/create_appointment"
	getAdminAppointmentsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_admin_appointments"
	getAppointmentHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_availability"
	getNotificationHistoryHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_notification_history"
	getNotificationRulesHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_notification_rules"
	getRegularSlotsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_regular_slots"
	getSettingsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_settings"
	getSpecialSlotsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_special_slots"
	getUserAppointmentsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/get_user_appointments"
	deleteTimeSlotHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/delete_time_slot"
	saveTimeSlotHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/save_time_slot"
	updateAppointmentStatusHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/update_appointment_status"
	updateNotificationRuleHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/update_notification_rule"
	updateSettingsHandler "github.com/m04kA/PhotoStudio-BookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/PhotoStudio-BookingService/internal/api/middleware"
	"github.com/m04kA/PhotoStudio-BookingService/internal/config"
	"github.com/m04kA/PhotoStudio-BookingService/internal/domain"
	appointmentRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/appointment"
	notificationRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/notification"
	settingsRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/settings"
	timeslotRepo "github.com/m04kA/PhotoStudio-BookingService/internal/infra/storage/timeslot"
	"github.com/m04kA/PhotoStudio-BookingService/internal/integrations/schedulefeed"
	appointmentsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/appointments"
	bookingFlowService "github.com/m04kA/PhotoStudio-BookingService/internal/service/bookingflow"
	notificationsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/notifications"
	settingsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/settings"
	timeslotsService "github.com/m04kA/PhotoStudio-BookingService/internal/service/timeslots"
	bookAppointmentUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/book_appointment"
	getAvailabilityUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/get_availability"
	saveTimeSlotUC "github.com/m04kA/PhotoStudio-BookingService/internal/usecase/save_time_slot"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/logger"
	"github.com/m04kA/PhotoStudio-BookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting PhotoStudio-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем репозитории (in-memory)
	initialSettings := domain.DefaultStudioSettings()
	initialSettings.DefaultSlotDurationMinutes = cfg.Booking.DefaultSlotDurationMinutes
	initialSettings.MinBookingNoticeMinutes = cfg.Booking.MinBookingNoticeMinutes
	initialSettings.AdvanceBookingDays = cfg.Booking.AdvanceBookingDays

	timeslotRepository := timeslotRepo.NewRepository()
	appointmentRepository := appointmentRepo.NewRepository()
	notificationRepository := notificationRepo.NewRepository()
	settingsRepository := settingsRepo.NewRepository(initialSettings)

	// Инициализируем клиента календарного фида (если включен)
	var feedClient getAvailabilityUC.ScheduleFeedClient
	if cfg.ScheduleFeed.Enabled {
		feedClient = schedulefeed.NewClient(
			cfg.ScheduleFeed.URL,
			time.Duration(cfg.ScheduleFeed.Timeout)*time.Second,
			cfg.ScheduleFeed.Token,
			log,
		)
		log.Info("Schedule feed client initialized (url=%s, timeout=%ds)",
			cfg.ScheduleFeed.URL, cfg.ScheduleFeed.Timeout)
	}

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		timeslotRepository,
		appointmentRepository,
		settingsRepository,
		feedClient,
		getAvailabilityUC.FallbackFunc(getAvailabilityUC.DefaultOfflineSchedule),
		log,
	)

	saveTimeSlotUseCase := saveTimeSlotUC.NewUseCase(
		timeslotRepository,
		settingsRepository,
		log,
	)

	// Инициализируем сервисы
	timeslotSvc := timeslotsService.NewService(timeslotRepository, log)
	appointmentSvc := appointmentsService.NewService(appointmentRepository, notificationRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	flowSvc := bookingFlowService.NewService(getAvailabilityUseCase, log)

	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		appointmentRepository,
		notificationRepository,
		settingsRepository,
		getAvailabilityUseCase,
		flowSvc,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getRegularSlots := getRegularSlotsHandler.NewHandler(timeslotSvc, log)
	getSpecialSlots := getSpecialSlotsHandler.NewHandler(timeslotSvc, log)
	saveTimeSlot := saveTimeSlotHandler.NewHandler(saveTimeSlotUseCase, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(timeslotSvc, log)
	bookingFlow := bookingFlowHandler.NewHandler(flowSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getAdminAppointments := getAdminAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getNotificationRules := getNotificationRulesHandler.NewHandler(notificationSvc, log)
	updateNotificationRule := updateNotificationRuleHandler.NewHandler(notificationSvc, log)
	getNotificationHistory := getNotificationHistoryHandler.NewHandler(notificationSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность по дням периода
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расписание студии
	api.HandleFunc("/timeslots/regular", getRegularSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/timeslots/special", getSpecialSlots.Handle).Methods(http.MethodGet)

	// Настройки студии (рабочее окно, контакты)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Booking flow: выбор даты и слота до отправки формы
	api.HandleFunc("/booking-flows", bookingFlow.HandleStart).Methods(http.MethodPost)
	api.HandleFunc("/booking-flows/{flowId}", bookingFlow.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/booking-flows/{flowId}/date", bookingFlow.HandleSelectDate).Methods(http.MethodPut)
	api.HandleFunc("/booking-flows/{flowId}/slot", bookingFlow.HandleSelectSlot).Methods(http.MethodPut)
	api.HandleFunc("/booking-flows/{flowId}/reset", bookingFlow.HandleReset).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Role: admin)
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminOnly(log))

	// --- Управление расписанием ---
	admin.HandleFunc("/timeslots/{slotId}", saveTimeSlot.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/timeslots/{slotId}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

	// --- Управление записями ---
	admin.HandleFunc("/appointments", getAdminAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPut)

	// --- Уведомления ---
	admin.HandleFunc("/notifications/rules", getNotificationRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/notifications/rules/{ruleId}", updateNotificationRule.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/notifications/history", getNotificationHistory.Handle).Methods(http.MethodGet)

	// --- Настройки ---
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
