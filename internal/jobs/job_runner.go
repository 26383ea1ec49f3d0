package jobs

import (
	"database/sql"

	"gymdesk-backend/internal/billing"
	"gymdesk-backend/internal/config"
	"gymdesk-backend/internal/logger"
	"gymdesk-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	db     *sql.DB
	email  service.EmailService
	config *config.Config
	clock  billing.Clock
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(db *sql.DB, email service.EmailService, cfg *config.Config, clock billing.Clock) *JobRunner {
	return &JobRunner{
		db:     db,
		email:  email,
		config: cfg,
		clock:  clock,
	}
}

// Config exposes the configuration for the scheduler wiring
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

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.MarkLapsedBillables()
	jr.SendRenewalReminders()
}
