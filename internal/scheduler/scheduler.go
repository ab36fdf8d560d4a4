package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"odms-backend/internal/jobs"
	"odms-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner. The
// digest schedule is interpreted in the configured local timezone, with
// seconds precision.
func NewScheduler(jobRunner *jobs.JobRunner) (*Scheduler, error) {
	loc, err := time.LoadLocation(jobRunner.Config().Scheduler.Timezone)
	if err != nil {
		return nil, err
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs() error {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.DailyDigest, s.jobs.SendDailyOdDigest)
	if err != nil {
		logger.Error("Failed to register SendDailyOdDigest job", "error", err)
		return err
	}

	logger.Info("All cron jobs registered successfully", "daily_digest", cfg.DailyDigest, "timezone", cfg.Timezone)
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
