package listreminders

import (
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var Now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestListRemindersKeepsStoreOrder(t *testing.T) {
	reminders := []reminder.Reminder{
		{ID: "b", Task: "remind b", DueAt: Now.Add(time.Hour)},
		{ID: "a", Task: "remind a", DueAt: Now, Delivered: true},
		{ID: "c", Task: "remind c", DueAt: Now.Add(-time.Hour)},
	}
	service := New(logging.NewFakeLogger(), reminder.NewFakeRepository(reminders...))

	result, err := service.Run(context.Background(), Input{})

	require.Nil(t, err)
	require.Equal(t, reminders, result.Reminders)
}

func TestListRemindersEmpty(t *testing.T) {
	service := New(logging.NewFakeLogger(), reminder.NewFakeRepository())

	result, err := service.Run(context.Background(), Input{})

	require.Nil(t, err)
	require.NotNil(t, result.Reminders)
	require.Len(t, result.Reminders, 0)
}

func TestListRemindersRepositoryError(t *testing.T) {
	logger := logging.NewFakeLogger()
	repository := reminder.NewFakeRepository()
	repository.ReadError = errors.New("boom")
	service := New(logger, repository)

	_, err := service.Run(context.Background(), Input{})

	require.NotNil(t, err)
	require.Equal(t, 1, logger.CountWithLevel(logging.ERROR))
}
