package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	storeStatisticsJob *StoreStatisticsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	statisticsHandler StatisticsHandler,
	statisticsSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		storeStatisticsJob: NewStoreStatisticsJob(statisticsHandler, statisticsSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.storeStatisticsJob.Start(); err != nil {
		return fmt.Errorf("failed to start store statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.storeStatisticsJob.Stop()
}
