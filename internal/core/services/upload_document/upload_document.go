package uploaddocument

import (
	"brainbox/internal/core/domain/chat"
	c "brainbox/internal/core/domain/common"
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/knowledge"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/services"
	"context"
	"io"
	"strings"
)

const (
	SUMMARY_PROMPT      = "Summarize in 5 points:\n"
	SUMMARY_INPUT_LIMIT = 2000
)

type Input struct {
	Filename string
	Content  io.Reader
}

type Result struct {
	Analysis string
}

type service struct {
	log                 logging.Logger
	extractor           knowledge.DocumentTextExtractor
	knowledgeRepository knowledge.Repository
	generator           chat.TextGenerator
}

func New(
	log logging.Logger,
	extractor knowledge.DocumentTextExtractor,
	knowledgeRepository knowledge.Repository,
	generator chat.TextGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if extractor == nil {
		panic(e.NewNilArgumentError("extractor"))
	}
	if knowledgeRepository == nil {
		panic(e.NewNilArgumentError("knowledgeRepository"))
	}
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	return &service{
		log:                 log,
		extractor:           extractor,
		knowledgeRepository: knowledgeRepository,
		generator:           generator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	text, err := s.extractor.ExtractText(ctx, input.Filename, input.Content)
	if err != nil {
		s.log.Warning(
			ctx,
			"Could not extract document text.",
			logging.Entry("filename", input.Filename),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err := s.knowledgeRepository.Save(ctx, knowledge.SlotDocument, text); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("filename", input.Filename))
		return result, err
	}

	summary, err := s.generator.GenerateText(ctx, SUMMARY_PROMPT+c.Truncate(text, SUMMARY_INPUT_LIMIT))
	summary = strings.TrimSpace(summary)
	if err != nil || summary == "" {
		s.log.Warning(ctx, "Document summary failed.", logging.Entry("err", err))
		summary = chat.FALLBACK_REPLY
	}

	s.log.Info(
		ctx,
		"Document successfully uploaded.",
		logging.Entry("filename", input.Filename),
		logging.Entry("textLength", len(text)),
	)
	result.Analysis = summary
	return result, nil
}
