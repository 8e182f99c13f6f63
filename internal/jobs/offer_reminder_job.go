package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// Offers older than this get re-notified on every run.
const offerReminderAge = 2 * time.Minute

// OfferReminderJob nudges couriers about offers they have left unanswered.
// An offer nobody reacts to blocks the order from being dispatched elsewhere.
type OfferReminderJob struct {
	handler commands.RemindPendingOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferReminderJob creates the reminder job, running once a minute.
func NewOfferReminderJob(handler commands.RemindPendingOffersCommandHandler, logger *slog.Logger) *OfferReminderJob {
	return &OfferReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_reminder_job"),
	}
}

// Start schedules the reminders.
func (j *OfferReminderJob) Start() error {
	_, err := j.cron.AddFunc("30 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewRemindPendingOffersCommand(offerReminderAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Offer reminder command rejected", "error", err)
			return
		}

		reminded, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Offer reminder run failed", "error", err)
			return
		}
		if reminded > 0 {
			j.logger.InfoContext(ctx, "Reminded couriers about pending offers", "count", reminded)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer reminder job started (running every minute)")
	return nil
}

// Stop stops the reminders.
func (j *OfferReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer reminder job stopped")
}
