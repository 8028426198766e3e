package history

import (
	"brainbox/internal/core/domain/chat"
	"brainbox/internal/db/jsonfile"
	"context"
)

var emptyExport = []byte("[]")

type messageSchema struct {
	Who  string `json:"who"`
	Text string `json:"text"`
}

// FileHistoryRepository keeps the conversation as a JSON array of
// {who, text} objects.
type FileHistoryRepository struct {
	store *jsonfile.Store[messageSchema]
}

func NewFileHistoryRepository(path string) (*FileHistoryRepository, error) {
	store, err := jsonfile.New[messageSchema](path)
	if err != nil {
		return nil, err
	}
	return &FileHistoryRepository{store: store}, nil
}

func (r *FileHistoryRepository) Append(ctx context.Context, messages ...chat.Message) error {
	return r.store.Update(ctx, func(items []messageSchema) ([]messageSchema, error) {
		for _, m := range messages {
			items = append(items, encodeMessage(m))
		}
		if len(items) > chat.MAX_HISTORY_LEN {
			items = items[len(items)-chat.MAX_HISTORY_LEN:]
		}
		return items, nil
	})
}

func (r *FileHistoryRepository) Read(ctx context.Context) ([]chat.Message, error) {
	items, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return decodeMessages(items), nil
}

// Export returns the history file as stored.
func (r *FileHistoryRepository) Export(ctx context.Context) ([]byte, error) {
	data, err := r.store.Raw(ctx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return emptyExport, nil
	}
	return data, nil
}

func (r *FileHistoryRepository) Clear(ctx context.Context) error {
	return r.store.Save(ctx, nil)
}

func encodeMessage(m chat.Message) messageSchema {
	return messageSchema{Who: string(m.Who), Text: m.Text}
}

func decodeMessages(items []messageSchema) []chat.Message {
	messages := make([]chat.Message, 0, len(items))
	for _, item := range items {
		messages = append(messages, chat.Message{Who: chat.Who(item.Who), Text: item.Text})
	}
	return messages
}
