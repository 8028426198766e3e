package chat

import (
	"context"
	"errors"
)

// MAX_HISTORY_LEN is the number of most recent messages kept in history.
const MAX_HISTORY_LEN = 200

// FALLBACK_REPLY is used whenever text generation fails.
const FALLBACK_REPLY = "I couldn't process that right now."

var ErrSearchNotConfigured = errors.New("web search is not configured")

type Who string

const (
	WhoUser Who = "user"
	WhoBot  Who = "bot"
)

type Message struct {
	Who  Who
	Text string
}

type HistoryRepository interface {
	Append(ctx context.Context, messages ...Message) error
	Read(ctx context.Context) ([]Message, error)
	Export(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type SearchResult struct {
	Title   string
	Snippet string
}

type WebSearcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// SpeechSynthesizer renders text to an audio file and returns the URL the
// file is served under.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string, language Language) (string, error)
}

// KeepLast returns the last n messages.
func KeepLast(messages []Message, n int) []Message {
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
