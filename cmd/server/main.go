package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	api "odms-backend/internal/api/http"
	"odms-backend/internal/config"
	"odms-backend/internal/logger"
	"odms-backend/internal/repository/postgres"
	"odms-backend/internal/security"
	"odms-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting OD Request Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	emailSvc := service.NewEmailService(
		cfg.Sendgrid.APIKey,
		cfg.Sendgrid.FromEmail,
		cfg.Sendgrid.FromName,
	)

	requestSvc := service.NewRequestService(
		store.RequestRepository,
		store.UserRepository,
		store.FacultyRepository,
		emailSvc,
		cfg.Workflow.UrgentRegNo,
	)
	authSvc := service.NewAuthService(
		store.UserRepository,
		emailSvc,
		tokenManager,
		time.Duration(cfg.Auth.OTPTTLMinutes)*time.Minute,
	)
	adminSvc := service.NewAdminService(store.UserRepository)
	importSvc := service.NewImportService(store.StudentRepository, store.FacultyRepository)

	router := api.NewRouter(
		tokenManager,
		api.NewAuthHandler(authSvc),
		api.NewRequestHandler(requestSvc),
		api.NewAdminHandler(adminSvc, importSvc),
	)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
