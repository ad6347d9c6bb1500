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
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_available_slots"
	getClientHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_client"
	getClientHistoryHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_client_history"
	getClientSummaryHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_client_summary"
	getReminderTextHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/get_reminder_text"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_appointments"
	listClientsHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_clients"
	listServicesHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_services"
	listStaffHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/list_staff"
	quoteDurationHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/quote_duration"
	updateAppointmentHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SalonScheduler/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-SalonScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-SalonScheduler/internal/config"
	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonScheduler/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/assistant"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/events"
	"github.com/m04kA/SMC-SalonScheduler/internal/scheduling"
	appointmentsService "github.com/m04kA/SMC-SalonScheduler/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonScheduler/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
	findAvailableSlotsUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_available_slots"
	updateAppointmentUC "github.com/m04kA/SMC-SalonScheduler/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SalonScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/logger"
	"github.com/m04kA/SMC-SalonScheduler/pkg/metrics"
	"github.com/m04kA/SMC-SalonScheduler/pkg/txmanager"
)

// Хранилище записей: память или PostgreSQL
type appointmentStore interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, eventType events.Type, a *domain.Appointment) error
	Close() error
}

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-SalonScheduler...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики (если включены). nil-коллектор безопасен: все методы проверяют получателя
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Календарь и рабочее окно. Значения уже проверены config.Validate
	loc, _ := cfg.Scheduling.Location()
	workStart, _ := cfg.Scheduling.WorkStartMinute()
	workEnd, _ := cfg.Scheduling.WorkEndMinute()

	calendar := scheduling.NewCalendar(loc)
	window := scheduling.WorkingWindow{
		StartMinute: workStart,
		EndMinute:   workEnd,
		StepMinutes: cfg.Scheduling.StepMinutes,
	}
	log.Info("Scheduling: timezone=%s, window=%s-%s, step=%dm, reject_overlaps=%t",
		loc, cfg.Scheduling.WorkStart, cfg.Scheduling.WorkEnd, cfg.Scheduling.StepMinutes, cfg.Scheduling.RejectOverlaps)

	// Справочники всегда в памяти
	store := memory.NewStore()
	if cfg.Storage.Seed {
		memory.SeedCatalog(store)
		log.Info("Catalog seeded with demo data")
	}

	var (
		appointments appointmentStore
		txMgr        txManager
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var wrappedDB *dbmetrics.DB
		if cfg.Metrics.Enabled {
			wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			wrappedDB = dbmetrics.Wrap(db, nil)
		}

		appointments = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)

	default:
		if cfg.Storage.Seed {
			memory.SeedAppointments(store, loc, time.Now())
			log.Info("Appointments seeded with demo data")
		}
		appointments = store
		txMgr = store
	}
	log.Info("Appointment storage: %s", cfg.Storage.Driver)

	// Ассистент: без ключа работает на шаблонных текстах
	var generator assistant.TextGenerator
	if cfg.Assistant.APIKey != "" {
		gemini, err := assistant.NewGeminiGenerator(context.Background(), cfg.Assistant.APIKey, cfg.Assistant.Model)
		if err != nil {
			log.Fatal("Failed to initialize Gemini client: %v", err)
		}
		defer gemini.Close()
		generator = gemini
		log.Info("Assistant enabled (model=%s)", cfg.Assistant.Model)
	} else {
		log.Warn("Assistant API key is not set, fallback texts will be used")
	}
	salonAssistant := assistant.New(generator, time.Duration(cfg.Assistant.Timeout)*time.Second, log)

	// События об изменениях записей
	var publisher eventPublisher = events.Noop{}
	if cfg.Events.Enabled {
		kafkaPublisher, err := events.NewKafkaPublisher(
			cfg.Events.Brokers,
			cfg.Events.Topic,
			time.Duration(cfg.Events.WriteTimeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize event publisher: %v", err)
		}
		publisher = kafkaPublisher
		log.Info("Events enabled (brokers=%v, topic=%s)", cfg.Events.Brokers, cfg.Events.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(
		appointments,
		txMgr,
		publisher,
		metricsCollector,
		cfg.Scheduling.RejectOverlaps,
		log,
	)
	catalogSvc := catalogService.NewService(
		store,
		appointments,
		salonAssistant,
		assistant.ParseLanguage(cfg.Assistant.Language, assistant.LanguageRU),
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointments,
		store,
		txMgr,
		publisher,
		metricsCollector,
		cfg.Scheduling.RejectOverlaps,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointments,
		store,
		txMgr,
		publisher,
		metricsCollector,
		cfg.Scheduling.RejectOverlaps,
		log,
	)
	findAvailableSlotsUseCase := findAvailableSlotsUC.NewUseCase(
		appointments,
		store,
		calendar,
		window,
		cfg.Scheduling.SearchDays,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(findAvailableSlotsUseCase, log)
	quoteDuration := quoteDurationHandler.NewHandler(findAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listStaff := listStaffHandler.NewHandler(catalogSvc, log)
	listClients := listClientsHandler.NewHandler(catalogSvc, log)
	getClient := getClientHandler.NewHandler(catalogSvc, log)
	getClientHistory := getClientHistoryHandler.NewHandler(catalogSvc, log)
	getClientSummary := getClientSummaryHandler.NewHandler(catalogSvc, log)
	getReminderText := getReminderTextHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Свободное время ---
	api.HandleFunc("/staff/{staffId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/durations", quoteDuration.Handle).Methods(http.MethodPost)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// --- Справочники ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", listStaff.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/history", getClientHistory.Handle).Methods(http.MethodGet)

	// --- Ассистент ---
	api.HandleFunc("/clients/{clientId}/summary", getClientSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/reminder-text", getReminderText.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
