package chat

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

type FakeHistoryRepository struct {
	Messages    []Message
	AppendError error
	ClearError  error
	lock        sync.Mutex
}

func NewFakeHistoryRepository(messages ...Message) *FakeHistoryRepository {
	return &FakeHistoryRepository{Messages: messages}
}

func (r *FakeHistoryRepository) Append(ctx context.Context, messages ...Message) error {
	if r.AppendError != nil {
		return r.AppendError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Messages = KeepLast(append(r.Messages, messages...), MAX_HISTORY_LEN)
	return nil
}

func (r *FakeHistoryRepository) Read(ctx context.Context) ([]Message, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Messages, nil
}

func (r *FakeHistoryRepository) Export(ctx context.Context) ([]byte, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	type item struct {
		Who  string `json:"who"`
		Text string `json:"text"`
	}
	items := make([]item, 0, len(r.Messages))
	for _, m := range r.Messages {
		items = append(items, item{Who: string(m.Who), Text: m.Text})
	}
	return json.Marshal(items)
}

func (r *FakeHistoryRepository) Clear(ctx context.Context) error {
	if r.ClearError != nil {
		return r.ClearError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Messages = nil
	return nil
}

// FakeTextGenerator answers prompts with Reply, or with a value produced by
// ReplyFunc when it is set.
type FakeTextGenerator struct {
	Reply     string
	ReplyFunc func(prompt string) string
	Error     error
	Prompts   []string
	lock      sync.Mutex
}

func NewFakeTextGenerator(reply string) *FakeTextGenerator {
	return &FakeTextGenerator{Reply: reply}
}

func (g *FakeTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.Prompts = append(g.Prompts, prompt)
	if g.Error != nil {
		return "", g.Error
	}
	if g.ReplyFunc != nil {
		return g.ReplyFunc(prompt), nil
	}
	return g.Reply, nil
}

type FakeWebSearcher struct {
	Results []SearchResult
	Error   error
	Queries []string
}

func NewFakeWebSearcher(results ...SearchResult) *FakeWebSearcher {
	return &FakeWebSearcher{Results: results}
}

func (s *FakeWebSearcher) Search(ctx context.Context, query string) ([]SearchResult, error) {
	s.Queries = append(s.Queries, query)
	if s.Error != nil {
		return nil, s.Error
	}
	return s.Results, nil
}

type FakeSpeechSynthesizer struct {
	URL         string
	Error       error
	Synthesized []string
}

func NewFakeSpeechSynthesizer(url string) *FakeSpeechSynthesizer {
	return &FakeSpeechSynthesizer{URL: url}
}

func (s *FakeSpeechSynthesizer) Synthesize(ctx context.Context, text string, language Language) (string, error) {
	s.Synthesized = append(s.Synthesized, text)
	if s.Error != nil {
		return "", s.Error
	}
	return s.URL, nil
}

var ErrFake = errors.New("fake collaborator error")
