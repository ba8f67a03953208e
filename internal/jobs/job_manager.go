// Package jobs provides scheduled background tasks for the courier platform.
//
// Jobs run on github.com/robfig/cron/v3 schedules and call command handlers,
// so the scheduled work goes through the same use cases as the API. The only
// job today is the invoice reconciliation sweep; JobManager exists so the
// composition root keeps a single start/stop point as jobs are added.
package jobs

import (
	"fmt"

	"courier/internal/core/application/usecases/commands"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	invoiceReconciliationJob *InvoiceReconciliationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	reconcileInvoicesHandler commands.ReconcileInvoicesCommandHandler,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		invoiceReconciliationJob: NewInvoiceReconciliationJob(reconcileInvoicesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.invoiceReconciliationJob.Start(); err != nil {
		return fmt.Errorf("failed to start invoice reconciliation job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceReconciliationJob.Stop()
}
