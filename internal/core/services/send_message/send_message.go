package sendmessage

import (
	"brainbox/internal/core/domain/chat"
	c "brainbox/internal/core/domain/common"
	e "brainbox/internal/core/domain/errors"
	"brainbox/internal/core/domain/knowledge"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/services"
	createreminder "brainbox/internal/core/services/create_reminder"
	deletedata "brainbox/internal/core/services/delete_data"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	NEW_CHAT_REPLY  = "✨ New chat started!"
	GREETING_REPLY  = "Hello! How can I help you?"
	NO_IMAGE_TEXT   = "I could not find readable text in the image."
	REMINDER_FORMAT = "✅ Reminder added (due: %s)"
)

type Input struct {
	Message       string
	Language      chat.Language
	Mode          chat.Mode
	VoiceEnabled  bool
	ClientAddress string
}

func (i Input) GetRateLimitKey() string {
	return "chat::" + i.ClientAddress
}

type Result struct {
	Reply    string
	AudioURL c.Optional[string]
}

type service struct {
	log                   logging.Logger
	historyRepository     chat.HistoryRepository
	knowledgeRepository   knowledge.Repository
	generator             chat.TextGenerator
	searcher              chat.WebSearcher
	synthesizer           chat.SpeechSynthesizer
	createReminderService services.Service[createreminder.Input, createreminder.Result]
	deleteDataService     services.Service[deletedata.Input, deletedata.Result]
}

func New(
	log logging.Logger,
	historyRepository chat.HistoryRepository,
	knowledgeRepository knowledge.Repository,
	generator chat.TextGenerator,
	searcher chat.WebSearcher,
	synthesizer chat.SpeechSynthesizer,
	createReminderService services.Service[createreminder.Input, createreminder.Result],
	deleteDataService services.Service[deletedata.Input, deletedata.Result],
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
	if generator == nil {
		panic(e.NewNilArgumentError("generator"))
	}
	if searcher == nil {
		panic(e.NewNilArgumentError("searcher"))
	}
	if synthesizer == nil {
		panic(e.NewNilArgumentError("synthesizer"))
	}
	if createReminderService == nil {
		panic(e.NewNilArgumentError("createReminderService"))
	}
	if deleteDataService == nil {
		panic(e.NewNilArgumentError("deleteDataService"))
	}
	return &service{
		log:                   log,
		historyRepository:     historyRepository,
		knowledgeRepository:   knowledgeRepository,
		generator:             generator,
		searcher:              searcher,
		synthesizer:           synthesizer,
		createReminderService: createReminderService,
		deleteDataService:     deleteDataService,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	message := strings.TrimSpace(input.Message)

	if isReset(message) {
		if _, err := s.deleteDataService.Run(ctx, deletedata.Input{}); err != nil {
			return result, err
		}
		result.Reply = NEW_CHAT_REPLY
		return result, nil
	}

	if isReminder(message) {
		created, err := s.createReminderService.Run(ctx, createreminder.Input{Task: message})
		if err != nil {
			return result, err
		}
		result.Reply = fmt.Sprintf(REMINDER_FORMAT, created.Reminder.DueAt.Format(time.RFC3339Nano))
		return result, nil
	}

	if isSmalltalk(message) {
		return s.respond(ctx, input, GREETING_REPLY), nil
	}

	if isOCRQuery(message) {
		imageText, exists, err := s.knowledgeRepository.Read(ctx, knowledge.SlotImage)
		if err != nil {
			logging.Error(ctx, s.log, err, logging.Entry("slot", knowledge.SlotImage.String()))
		}
		if exists {
			reply := strings.TrimSpace(imageText)
			if reply == "" {
				reply = NO_IMAGE_TEXT
			}
			return s.respond(ctx, input, reply), nil
		}
	}

	reply, ok := s.answerFromDocument(ctx, message)
	if !ok {
		reply = s.answerFromWeb(ctx, message)
	}

	result = s.respond(ctx, input, reply)
	err = s.historyRepository.Append(
		ctx,
		chat.Message{Who: chat.WhoUser, Text: message},
		chat.Message{Who: chat.WhoBot, Text: result.Reply},
	)
	if err != nil {
		logging.Error(ctx, s.log, err)
	}
	return result, nil
}

// respond applies translation and optional speech to a reply.
func (s *service) respond(ctx context.Context, input Input, reply string) (result Result) {
	result.Reply = s.translate(ctx, reply, input.Language, input.Mode)
	if input.VoiceEnabled {
		result.AudioURL = s.speak(ctx, result.Reply, input.Language)
	}
	return result
}

func (s *service) answerFromDocument(ctx context.Context, question string) (string, bool) {
	document, exists, err := s.knowledgeRepository.Read(ctx, knowledge.SlotDocument)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("slot", knowledge.SlotDocument.String()))
		return "", false
	}
	if !exists || strings.TrimSpace(document) == "" {
		return "", false
	}

	answer, ok := s.generate(ctx, documentPrompt(question, document))
	if !ok || isNotInDocument(answer) {
		return "", false
	}
	return answer, true
}

func (s *service) answerFromWeb(ctx context.Context, question string) string {
	results, err := s.searcher.Search(ctx, question)
	if errors.Is(err, chat.ErrSearchNotConfigured) {
		s.log.Debug(ctx, "Web search is not configured.")
	} else if err != nil {
		s.log.Warning(ctx, "Web search failed.", logging.Entry("err", err))
	}

	prompt := directPrompt(question)
	if len(results) > 0 {
		prompt = webPrompt(question, results)
	}
	answer, ok := s.generate(ctx, prompt)
	if !ok {
		return chat.FALLBACK_REPLY
	}
	return answer
}

func (s *service) translate(ctx context.Context, reply string, language chat.Language, mode chat.Mode) string {
	if reply == "" || !language.NeedsTranslation() {
		return reply
	}
	translated, ok := s.generate(ctx, translationPrompt(reply, language, mode))
	if !ok {
		return reply
	}
	return translated
}

func (s *service) speak(ctx context.Context, text string, language chat.Language) c.Optional[string] {
	url, err := s.synthesizer.Synthesize(ctx, text, language)
	if err != nil {
		s.log.Warning(ctx, "Speech synthesis failed.", logging.Entry("err", err))
		return c.Optional[string]{}
	}
	return c.NewOptional(url, url != "")
}

// generate reports false when the model fails or answers with nothing.
func (s *service) generate(ctx context.Context, prompt string) (string, bool) {
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		s.log.Warning(ctx, "Text generation failed.", logging.Entry("err", err))
		return "", false
	}
	text = strings.TrimSpace(text)
	return text, text != ""
}
