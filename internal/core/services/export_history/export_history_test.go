package exporthistory

import (
	"brainbox/internal/core/domain/chat"
	"brainbox/internal/core/domain/logging"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportHistory(t *testing.T) {
	history := chat.NewFakeHistoryRepository(
		chat.Message{Who: chat.WhoUser, Text: "hello there"},
		chat.Message{Who: chat.WhoBot, Text: "Hi!"},
	)
	service := New(logging.NewFakeLogger(), history)

	result, err := service.Run(context.Background(), Input{})

	require.Nil(t, err)
	require.JSONEq(t, `[{"who":"user","text":"hello there"},{"who":"bot","text":"Hi!"}]`, string(result.Data))
}

func TestExportEmptyHistory(t *testing.T) {
	service := New(logging.NewFakeLogger(), chat.NewFakeHistoryRepository())

	result, err := service.Run(context.Background(), Input{})

	require.Nil(t, err)
	require.Equal(t, "[]", string(result.Data))
}
