package listduereminders

import (
	c "brainbox/internal/core/domain/common"
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	"context"
	"time"
)

type Input struct{}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	log                logging.Logger
	reminderRepository reminder.Repository
	now                func() time.Time
}

// New returns a read-only service listing reminders that are not delivered
// and whose due time is not after now, in store order.
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
	now := s.now()
	reminders, err := s.reminderRepository.Read(ctx, reminder.ReadOptions{
		DueAtNotAfter:   c.NewOptional(now, true),
		DeliveredEquals: c.NewOptional(false, true),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("now", now))
		return result, err
	}

	if len(reminders) > 0 {
		s.log.Info(ctx, "Got due reminders.", logging.Entry("count", len(reminders)))
	}
	result.Reminders = reminders
	return result, nil
}
