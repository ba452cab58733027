package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// reclamationTickSpec fires once a minute; the grace period itself comes
// from the configured schedule, read by the handler on every run.
const reclamationTickSpec = "* * * * *"

// ReclamationJob periodically releases resources held by abandoned unpaid
// orders.
type ReclamationJob struct {
	handler commands.ReclaimExpiredOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReclamationJob creates the reclamation sweep job.
func NewReclamationJob(handler commands.ReclaimExpiredOrdersCommandHandler, logger *slog.Logger) *ReclamationJob {
	return &ReclamationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reclamation_job"),
	}
}

// Start schedules the sweep to run every minute.
func (j *ReclamationJob) Start() error {
	_, err := j.cron.AddFunc(reclamationTickSpec, func() {
		ctx := context.Background()
		cmd := commands.NewReclaimExpiredOrdersCommand()

		reclaimed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Reclamation sweep failed", "error", err)
			return
		}

		if len(reclaimed) > 0 {
			j.logger.InfoContext(ctx, "Reclamation sweep released resources",
				"count", len(reclaimed))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reclamation job started (ticking every minute)")
	return nil
}

// Stop stops the reclamation job.
func (j *ReclamationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reclamation job stopped")
}
