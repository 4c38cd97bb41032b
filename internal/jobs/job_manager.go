package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatusReportJob *OrderStatusReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	summaryHandler OrdersSummaryHandler,
	recorder StatusRecorder,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatusReportJob: NewOrderStatusReportJob(summaryHandler, recorder, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatusReportJob.Stop()
}
