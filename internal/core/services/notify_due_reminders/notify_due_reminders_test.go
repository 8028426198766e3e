package notifyduereminders

import (
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	logger   *logging.FakeLogger
	source   *reminder.FakeDueSource
	notifier *reminder.FakeNotifier
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.source = reminder.NewFakeDueSource(
		reminder.Reminder{ID: "1", Task: "remind me to stretch", DueAt: Now},
		reminder.Reminder{ID: "2", Task: "remind me to call mom", DueAt: Now},
	)
	suite.notifier = reminder.NewFakeNotifier()
}

func TestNotifyDueRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestNotifiesEachDueReminder() {
	service := New(s.logger, s.source, s.notifier, false)

	result, err := service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Equal([]reminder.ID{"1", "2"}, result.NotifiedIDs)
	s.Equal([]reminder.Notification{
		{Title: NOTIFICATION_TITLE, Message: "remind me to stretch"},
		{Title: NOTIFICATION_TITLE, Message: "remind me to call mom"},
	}, s.notifier.Sent)
	s.Len(s.source.Acknowledged, 0)
}

func (s *testSuite) TestAcknowledgesWhenEnabled() {
	service := New(s.logger, s.source, s.notifier, true)

	_, err := service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Equal([]reminder.ID{"1", "2"}, s.source.Acknowledged)
}

func (s *testSuite) TestNothingDue() {
	s.source.Due = nil
	service := New(s.logger, s.source, s.notifier, true)

	result, err := service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Len(result.NotifiedIDs, 0)
	s.Len(s.notifier.Sent, 0)
}

func (s *testSuite) TestListError() {
	s.source.ListError = errors.New("connection refused")
	service := New(s.logger, s.source, s.notifier, false)

	_, err := service.Run(context.Background(), Input{})

	s.NotNil(err)
	s.Len(s.notifier.Sent, 0)
	s.Equal(1, s.logger.CountWithLevel(logging.ERROR))
}

func (s *testSuite) TestNotifyErrorIsLoggedAndSkipped() {
	s.notifier.Error = errors.New("no notification daemon")
	service := New(s.logger, s.source, s.notifier, true)

	result, err := service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Len(result.NotifiedIDs, 0)
	s.Len(s.source.Acknowledged, 0)
	s.Equal(2, s.logger.CountWithLevel(logging.ERROR))
}

func (s *testSuite) TestAcknowledgeErrorIsLogged() {
	s.source.AckError = errors.New("timeout")
	service := New(s.logger, s.source, s.notifier, true)

	result, err := service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Len(result.NotifiedIDs, 2)
	s.Equal(2, s.logger.CountWithLevel(logging.ERROR))
}
