package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	keepaliveJob *KeepaliveJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(heartbeater Heartbeater, keepaliveSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		keepaliveJob: NewKeepaliveJob(heartbeater, keepaliveSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.keepaliveJob.Start(); err != nil {
		return fmt.Errorf("failed to start keepalive job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.keepaliveJob.Stop()
}
