package notifier

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/services"
	notifyduereminders "brainbox/internal/core/services/notify_due_reminders"
	"context"
	"time"
)

// Run polls for due reminders every interval until ctx is done. The first
// poll happens right away unless ctx is already done. A failed iteration is logged and the loop goes on.
func Run(
	ctx context.Context,
	log logging.Logger,
	service services.Service[notifyduereminders.Input, notifyduereminders.Result],
	interval time.Duration,
) {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info(ctx, "Starting due reminders notifier.", logging.Entry("interval", interval.String()))
	runOnce(ctx, log, service)

	for {
		select {
		case <-ctx.Done():
			log.Info(context.Background(), "Stopping due reminders notifier.")
			return
		case <-ticker.C:
			runOnce(ctx, log, service)
		}
	}
}

func runOnce(
	ctx context.Context,
	log logging.Logger,
	service services.Service[notifyduereminders.Input, notifyduereminders.Result],
) {
	if ctx.Err() != nil {
		return
	}
	result, err := service.Run(ctx, notifyduereminders.Input{})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Error(ctx, "Notifier iteration failed.", logging.Entry("err", err))
		return
	}
	if len(result.NotifiedIDs) > 0 {
		log.Debug(ctx, "Notifier iteration finished.", logging.Entry("notified", len(result.NotifiedIDs)))
	}
}
