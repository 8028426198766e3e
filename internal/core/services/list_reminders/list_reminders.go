package listreminders

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	"context"
)

type Input struct{}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
}

func New(
	log logging.Logger,
	reminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                log,
		reminderRepository: reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Debug(ctx, "Reminders successfully read.", logging.Entry("count", len(reminders)))
	result.Reminders = reminders
	return result, nil
}
