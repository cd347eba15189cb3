package jobs

import (
	"fmt"
	"log/slog"

	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/business"
	"pos/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	salesSnapshotJob *SalesSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	salesSummaryHandler queries.GetSalesSummaryQueryHandler,
	publisher ports.EventPublisher,
	snapshotBusinesses []business.ID,
	snapshotSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		salesSnapshotJob: NewSalesSnapshotJob(salesSummaryHandler, publisher, snapshotBusinesses, snapshotSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.salesSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start sales snapshot job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.salesSnapshotJob.Stop()
}
