package deletedata

import (
	"brainbox/internal/core/domain/chat"
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/knowledge"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	"context"
	"errors"
)

type Input struct{}

type Result struct{}

type service struct {
	log                 logging.Logger
	historyRepository   chat.HistoryRepository
	knowledgeRepository knowledge.Repository
	reminderRepository  reminder.Repository
}

// New returns a service wiping everything the assistant keeps: chat
// history, both knowledge slots and all reminders. Every store is cleared
// even if an earlier one fails.
func New(
	log logging.Logger,
	historyRepository chat.HistoryRepository,
	knowledgeRepository knowledge.Repository,
	reminderRepository reminder.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if historyRepository == nil {
		panic(e.NewNilArgumentError("historyRepository"))
	}
	if knowledgeRepository == nil {
		panic(e.NewNilArgumentError("knowledgeRepository"))
	}
	if reminderRepository == nil {
		panic(e.NewNilArgumentError("reminderRepository"))
	}
	return &service{
		log:                 log,
		historyRepository:   historyRepository,
		knowledgeRepository: knowledgeRepository,
		reminderRepository:  reminderRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	var errs []error

	if err := s.historyRepository.Clear(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("store", "history"))
		errs = append(errs, err)
	}
	for _, slot := range knowledge.Slots {
		if err := s.knowledgeRepository.Delete(ctx, slot); err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("store", slot.String()))
			errs = append(errs, err)
		}
	}
	if err := s.reminderRepository.DeleteAll(ctx); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("store", "reminders"))
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}
	s.log.Info(ctx, "All data successfully deleted.")
	return result, nil
}
