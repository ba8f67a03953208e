package jobs

import (
	"context"

	"courier/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// reconciliationSchedule runs the sweep every five minutes. Invoices are
// normally generated at pickup; the sweep only catches up after renderer
// outages, so a short delay is acceptable.
const reconciliationSchedule = "0 */5 * * * *"

// InvoiceReconciliationJob periodically generates invoices for shipments
// that reached pickup while invoice generation was failing.
type InvoiceReconciliationJob struct {
	handler commands.ReconcileInvoicesCommandHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewInvoiceReconciliationJob creates the reconciliation job.
func NewInvoiceReconciliationJob(
	handler commands.ReconcileInvoicesCommandHandler,
	logger *zap.Logger,
) *InvoiceReconciliationJob {
	return &InvoiceReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "invoice_reconciliation_job")),
	}
}

// Start schedules the reconciliation sweep.
func (j *InvoiceReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(reconciliationSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileInvoicesCommand()

		generated, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error("invoice reconciliation sweep failed", zap.Error(err))
			return
		}
		if generated > 0 {
			j.logger.Info("invoice reconciliation sweep completed",
				zap.Int("generated", generated),
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("invoice reconciliation job started")
	return nil
}

// Stop stops the reconciliation job.
func (j *InvoiceReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.Info("invoice reconciliation job stopped")
}
