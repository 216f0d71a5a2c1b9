// Package jobs provides the cron-scheduled background tasks of the
// service. Jobs are coordinated through JobManager, which the composition
// root starts after the web server is wired and stops on shutdown.
package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	stuckParcelWatchdog *StuckParcelWatchdog
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	stuckParcelLister StuckParcelLister,
	stuckParcelMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stuckParcelWatchdog: NewStuckParcelWatchdog(stuckParcelLister, stuckParcelMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.stuckParcelWatchdog.Start(); err != nil {
		return fmt.Errorf("failed to start stuck parcel watchdog: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.stuckParcelWatchdog.Stop()
}
