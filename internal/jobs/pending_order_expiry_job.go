package jobs

import (
	"context"
	"log/slog"
	"time"

	"farmmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingOrderExpiryJob cancels pending orders the seller never responded to.
// Runs hourly and restores reserved inventory for every order it cancels.
type PendingOrderExpiryJob struct {
	handler commands.ExpirePendingOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrderExpiryJob creates the expiry job. Orders older than maxAge
// and still pending are cancelled on each run.
func NewPendingOrderExpiryJob(
	handler commands.ExpirePendingOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *PendingOrderExpiryJob {
	return &PendingOrderExpiryJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_order_expiry_job"),
	}
}

// Start begins the expiry job to run at the top of every hour.
func (j *PendingOrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewExpirePendingOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Pending order expiry job misconfigured", "error", cmdErr)
			return
		}

		expired, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending order expiry job failed", "error", handleErr)
			return
		}

		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pending orders", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order expiry job started (running hourly)")
	return nil
}

// Stop stops the expiry job.
func (j *PendingOrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order expiry job stopped")
}
