package jobs

import (
	"context"
	"log/slog"

	"orders/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TotalsReconciliationJob periodically sweeps the store for orders whose
// aggregate fields have drifted from their item sets and repairs them.
// The application's own write paths keep aggregates consistent, so a non-zero
// repair count indicates out-of-band writes and is worth logging.
type TotalsReconciliationJob struct {
	handler  commands.ReconcileOrderTotalsCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewTotalsReconciliationJob creates the reconciliation job with the given
// cron schedule, for example "0 */5 * * * *" for every five minutes.
func NewTotalsReconciliationJob(
	handler commands.ReconcileOrderTotalsCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TotalsReconciliationJob {
	return &TotalsReconciliationJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "totals_reconciliation_job"),
	}
}

// Start begins the reconciliation job on its configured schedule.
func (j *TotalsReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewReconcileOrderTotalsCommand()

		repaired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Totals reconciliation job failed", "error", handleErr)
			return
		}

		if repaired > 0 {
			j.logger.WarnContext(ctx, "Repaired drifted order totals", "orders", repaired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Totals reconciliation job started", "schedule", j.schedule)
	return nil
}

// Stop stops the reconciliation job.
func (j *TotalsReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Totals reconciliation job stopped")
}
