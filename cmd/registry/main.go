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

	"github.com/m04kA/SMC-AppointmentDesk/internal/api/middleware"
	registryAPI "github.com/m04kA/SMC-AppointmentDesk/internal/api/registry"
	"github.com/m04kA/SMC-AppointmentDesk/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentDesk/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentDesk/internal/registry"
	"github.com/m04kA/SMC-AppointmentDesk/internal/service/catalog"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/logger"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentDesk/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("registry.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateDatabase(); err != nil {
		fmt.Printf("Invalid database config: %v\n", err)
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

	log.Info("Starting SMC-AppointmentDesk registry...")

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий, транзакции, сервис
	repo := appointmentRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)
	svc := registry.NewService(repo, txMgr, catalog.Default(), log.With("registry"))

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log.With("http")))

	if cfg.Metrics.Enabled {
		metricsCollector := metrics.New(cfg.Metrics.ServiceName)
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	registryAPI.NewHandler(svc, log).Register(r)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
