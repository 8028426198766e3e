package exporthistory

import (
	"brainbox/internal/core/domain/chat"
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/services"
	"context"
)

type Input struct{}

type Result struct {
	// Data is the raw JSON document of the history, "[]" when it is empty.
	Data []byte
}

type service struct {
	log               logging.Logger
	historyRepository chat.HistoryRepository
}

func New(log logging.Logger, historyRepository chat.HistoryRepository) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if historyRepository == nil {
		panic(e.NewNilArgumentError("historyRepository"))
	}
	return &service{log: log, historyRepository: historyRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	data, err := s.historyRepository.Export(ctx)
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}
	if len(data) == 0 {
		data = []byte("[]")
	}
	result.Data = data
	return result, nil
}
