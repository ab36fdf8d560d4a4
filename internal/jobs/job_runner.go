package jobs

import (
	"time"

	"odms-backend/internal/config"
	"odms-backend/internal/logger"
	"odms-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	digest service.DigestService
	config *config.Config
	now    func() time.Time
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(digest service.DigestService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		digest: digest,
		config: cfg,
		now:    time.Now,
	}
}

// Config returns the loaded application configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
