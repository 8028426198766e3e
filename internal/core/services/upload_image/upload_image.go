package uploadimage

import (
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/knowledge"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/services"
	"context"
	"errors"
	"io"
)

type Input struct {
	Content io.Reader
}

type Result struct {
	OCRText string
}

type service struct {
	log                 logging.Logger
	recognizer          knowledge.ImageTextRecognizer
	knowledgeRepository knowledge.Repository
}

func New(
	log logging.Logger,
	recognizer knowledge.ImageTextRecognizer,
	knowledgeRepository knowledge.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if recognizer == nil {
		panic(e.NewNilArgumentError("recognizer"))
	}
	if knowledgeRepository == nil {
		panic(e.NewNilArgumentError("knowledgeRepository"))
	}
	return &service{
		log:                 log,
		recognizer:          recognizer,
		knowledgeRepository: knowledgeRepository,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	text, err := s.recognizer.RecognizeText(ctx, input.Content)
	if errors.Is(err, knowledge.ErrInvalidImage) {
		s.log.Warning(ctx, "Uploaded image could not be decoded.", logging.Entry("err", err))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	if err := s.knowledgeRepository.Save(ctx, knowledge.SlotImage, text); err != nil {
		logging.Error(ctx, s.log, err)
		return result, err
	}

	s.log.Info(ctx, "Image successfully processed.", logging.Entry("textLength", len(text)))
	result.OCRText = text
	return result, nil
}
