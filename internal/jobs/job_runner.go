package jobs

import (
	"joke-api/internal/config"
	"joke-api/internal/logger"
	"joke-api/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	accessLogs repository.AccessLogRepository
	analytics  repository.AnalyticsRepository
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(accessLogs repository.AccessLogRepository, analytics repository.AnalyticsRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		accessLogs: accessLogs,
		analytics:  analytics,
		config:     cfg,
	}
}

// Config exposes the runner's configuration to the scheduler
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
