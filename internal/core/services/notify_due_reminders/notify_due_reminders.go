package notifyduereminders

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	"context"
)

const NOTIFICATION_TITLE = "🔔 Reminder"

type Input struct{}

type Result struct {
	NotifiedIDs []reminder.ID
}

type service struct {
	log         logging.Logger
	source      reminder.DueSource
	notifier    reminder.Notifier
	acknowledge bool
}

// New returns one iteration of the notifier loop: fetch due reminders and
// raise a notification per item. With acknowledge set, every notified
// reminder is acknowledged with no snooze so it is not raised again.
func New(
	log logging.Logger,
	source reminder.DueSource,
	notifier reminder.Notifier,
	acknowledge bool,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if source == nil {
		panic(e.NewNilArgumentError("source"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &service{
		log:         log,
		source:      source,
		notifier:    notifier,
		acknowledge: acknowledge,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	due, err := s.source.ListDue(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	result.NotifiedIDs = make([]reminder.ID, 0, len(due))
	for _, rem := range due {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := s.notifier.Notify(ctx, reminder.Notification{Title: NOTIFICATION_TITLE, Message: rem.Task})
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
			continue
		}
		result.NotifiedIDs = append(result.NotifiedIDs, rem.ID)

		if !s.acknowledge {
			continue
		}
		if err := s.source.Acknowledge(ctx, rem.ID, 0); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("reminderID", rem.ID))
		}
	}

	if len(result.NotifiedIDs) > 0 {
		s.log.Info(
			ctx,
			"Due reminders notified.",
			logging.Entry("count", len(result.NotifiedIDs)),
			logging.Entry("reminderIDs", result.NotifiedIDs),
		)
	}
	return result, nil
}
