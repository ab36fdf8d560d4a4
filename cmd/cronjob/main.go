package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"odms-backend/internal/config"
	"odms-backend/internal/jobs"
	"odms-backend/internal/logger"
	"odms-backend/internal/repository/postgres"
	"odms-backend/internal/scheduler"
	"odms-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'daily-digest')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting OD Request Cronjob Runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	emailService := service.NewEmailService(
		cfg.Sendgrid.APIKey,
		cfg.Sendgrid.FromEmail,
		cfg.Sendgrid.FromName,
	)

	digestService := service.NewDigestService(
		store.RequestRepository,
		store.FacultyRepository,
		emailService,
	)

	jobRunner := jobs.NewJobRunner(digestService, cfg)

	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	cronScheduler, err := scheduler.NewScheduler(jobRunner)
	if err != nil {
		logger.Error("Failed to initialize scheduler", "error", err)
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "daily-digest":
		jobRunner.SendDailyOdDigest()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - daily-digest\n")
		os.Exit(1)
	}
}
