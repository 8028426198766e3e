package createreminder

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	"context"
	"time"
)

type Input struct {
	// Task is stored verbatim, an empty task is accepted.
	Task string
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	identityGenerator  reminder.IdentityGenerator
	now                func() time.Time
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
	identityGenerator reminder.IdentityGenerator,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	if identityGenerator == nil {
		panic(e.NewNilArgumentError("identityGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
		identityGenerator:  identityGenerator,
		now:                now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	createdReminder, err := s.reminderRepository.Create(ctx, reminder.CreateInput{
		ID:        s.identityGenerator.GenerateReminderID(),
		Task:      input.Task,
		DueAt:     reminder.DueAtFrom(s.now()),
		Delivered: false,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("reminderID", createdReminder.ID),
		logging.Entry("dueAt", createdReminder.DueAt),
	)
	result.Reminder = createdReminder
	return result, nil
}
