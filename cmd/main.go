package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/get_available_slots"
	getScheduleConfigHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/get_schedule_config"
	getUserAppointmentsHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/get_user_appointments"
	listServicesHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/list_services"
	updateScheduleConfigHandler "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/handlers/update_schedule_config"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/api/middleware"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/config"
	appointmentRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/appointment"
	serviceRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/service"
	settingsRepo "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/infra/storage/settings"
	pushServiceClient "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/integrations/pushservice"
	appointmentsService "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/appointments"
	catalogService "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/catalog"
	scheduleService "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/service/schedule"
	createAppointmentUC "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/Edmartins1980/Everaldo-Cabeleireiro/internal/usecase/get_available_slots"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/dbmetrics"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/logger"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/metrics"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/simpletxmanager"
	"github.com/Edmartins1980/Everaldo-Cabeleireiro/pkg/txmanager"
)

func main() {
	// Загружаем секреты из .env (если файл есть)
	_ = godotenv.Load()

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

	log.Info("Starting Everaldo-Cabeleireiro booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент push-уведомлений (если включен)
	var notifier createAppointmentUC.Notifier
	if cfg.Notifications.Enabled {
		notifier = pushServiceClient.NewClient(
			cfg.Notifications.URL,
			cfg.Notifications.AppID,
			cfg.Notifications.APIKey,
			time.Duration(cfg.Notifications.Timeout)*time.Second,
			log,
		)
		log.Info("Push notification client initialized (url=%s timeout=%ds)",
			cfg.Notifications.URL, cfg.Notifications.Timeout)
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		serviceRepository     *serviceRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		settingsRepository,
		cfg.Business.DaySchedule(),
		log,
	)
	catalogSvc := catalogService.NewService(
		serviceRepository,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		scheduleSvc,
		txMgr,
		notifier,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		scheduleSvc,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log, metricsCollector)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log, metricsCollector)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг салона
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Получение доступных слотов для записи
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Действующее расписание салона
	api.HandleFunc("/schedule-config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Управление салоном ---
	// Обновление расписания
	protected.HandleFunc("/schedule-config", updateScheduleConfig.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
