package acknowledgereminder

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	ID reminder.ID
	// SnoozeMinutes > 0 moves the due time forward, anything else marks the
	// reminder delivered.
	SnoozeMinutes int
}

func (i Input) IsSnooze() bool {
	return i.SnoozeMinutes > 0
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	update := reminder.UpdateInput{
		ID:                input.ID,
		DoDeliveredUpdate: true,
		Delivered:         true,
	}
	if input.IsSnooze() {
		update.DoDueAtUpdate = true
		update.DueAt = reminder.SnoozedUntil(s.now(), input.SnoozeMinutes)
		update.Delivered = false
	}

	updatedReminder, err := s.reminderRepository.Update(ctx, update)
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		s.log.Info(ctx, "Acknowledged reminder does not exist.", logging.Entry("input", input))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	if input.IsSnooze() {
		s.log.Info(
			ctx,
			"Reminder successfully snoozed.",
			logging.Entry("reminderID", updatedReminder.ID),
			logging.Entry("dueAt", updatedReminder.DueAt),
		)
	} else {
		s.log.Info(ctx, "Reminder successfully delivered.", logging.Entry("reminderID", updatedReminder.ID))
	}
	result.Reminder = updatedReminder
	return result, nil
}
