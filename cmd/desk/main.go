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

	createAppointmentHandler "github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers/create_appointment"
	getOverviewHandler "github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers/get_overview"
	getSnapshotHandler "github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers/get_snapshot"
	listSlotsHandler "github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers/list_slots"
	markCompletedHandler "github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers/mark_completed"
	selectDateHandler "github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers/select_date"
	selectSlotHandler "github.com/m04kA/SMC-AppointmentDesk/internal/api/handlers/select_slot"
	"github.com/m04kA/SMC-AppointmentDesk/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentDesk/internal/config"
	"github.com/m04kA/SMC-AppointmentDesk/internal/domain"
	"github.com/m04kA/SMC-AppointmentDesk/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/resync"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/selection"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/snapshot"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/create_appointment"
	markCompletedUC "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/mark_completed"
	selectDateUC "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/select_date"
	selectSlotUC "github.com/m04kA/SMC-AppointmentDesk/internal/usecase/select_slot"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/inflight"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/logger"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	var log *logger.Logger
	if cfg.Logs.Console {
		log, err = logger.NewConsole(cfg.Logs.Level)
	} else {
		log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
	}
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AppointmentDesk...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Клиент сервиса записей
	client := appointmentservice.NewClient(
		cfg.AppointmentService.URL,
		time.Duration(cfg.AppointmentService.Timeout)*time.Second,
		log.With("appointmentservice"),
		metricsCollector,
	)
	log.Info("AppointmentService client initialized (url=%s timeout=%ds)",
		cfg.AppointmentService.URL, cfg.AppointmentService.Timeout)

	// Ядро: каталог, кэш, выбор, снимки
	slotCatalog := catalog.Default()
	state := selection.New(time.Now())
	store := appointments.NewStore(client, metricsCollector, log.With("store")).WithDateFilter(state)
	calculator := snapshot.NewCalculator(slotCatalog, store, client, log.With("snapshot"))
	syncer := resync.NewSyncer(store, calculator, state, metricsCollector, log.With("resync"))
	guard := inflight.New()

	// Первичная загрузка записей на сегодня
	initCtx, initCancel := context.WithTimeout(context.Background(), time.Duration(cfg.AppointmentService.Timeout)*time.Second)
	if _, err := syncer.Resync(initCtx, state.Current().Date); err != nil {
		log.Warn("Initial load for %s failed, starting with empty cache: %v",
			state.Current().Date.Format(domain.DateFormat), err)
	}
	initCancel()

	// Инициализируем use cases
	selectDateUseCase := selectDateUC.NewUseCase(state, syncer, log)
	selectSlotUseCase := selectSlotUC.NewUseCase(slotCatalog, state, syncer, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		slotCatalog,
		client,
		state,
		syncer,
		guard,
		metricsCollector,
		log,
	)
	markCompletedUseCase := markCompletedUC.NewUseCase(client, state, syncer, log)

	// Инициализируем handlers
	listSlots := listSlotsHandler.NewHandler(slotCatalog, log)
	getOverview := getOverviewHandler.NewHandler(calculator, log)
	getSnapshot := getSnapshotHandler.NewHandler(state, log)
	selectDate := selectDateHandler.NewHandler(selectDateUseCase, log)
	selectSlot := selectSlotHandler.NewHandler(selectSlotUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	markCompleted := markCompletedHandler.NewHandler(markCompletedUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log.With("http")))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог и состояние экрана
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/overview", getOverview.Handle).Methods(http.MethodGet)
	api.HandleFunc("/snapshot", getSnapshot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/selection/date", selectDate.Handle).Methods(http.MethodPut)
	api.HandleFunc("/selection/slot", selectSlot.Handle).Methods(http.MethodPut)

	// Записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}/complete", markCompleted.Handle).Methods(http.MethodPost)

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
