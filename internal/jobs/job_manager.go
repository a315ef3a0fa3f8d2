package jobs

import (
	"fmt"
	"log/slog"

	"inventory/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueTransferJob *OverdueTransferJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getTransfersHandler queries.GetTransfersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueTransferJob: NewOverdueTransferJob(getTransfersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueTransferJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue transfer job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueTransferJob.Stop()
}
