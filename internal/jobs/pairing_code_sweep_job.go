package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PairingCodeSweepJob periodically clears pairing codes past their expiry.
// A code that is never redeemed must not stay redeemable forever.
type PairingCodeSweepJob struct {
	handler commands.ExpirePairingCodesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPairingCodeSweepJob creates the sweep job, running once a minute.
func NewPairingCodeSweepJob(handler commands.ExpirePairingCodesCommandHandler, logger *slog.Logger) *PairingCodeSweepJob {
	return &PairingCodeSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pairing_code_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *PairingCodeSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpirePairingCodesCommand()

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pairing code sweep failed", "error", err)
			return
		}
		if expired > 0 {
			j.logger.InfoContext(ctx, "Expired stale pairing codes", "count", expired)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pairing code sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep.
func (j *PairingCodeSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pairing code sweep job stopped")
}
