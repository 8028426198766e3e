package listduereminders

import (
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/domain/reminder"
	"brainbox/internal/core/services"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

type testSuite struct {
	suite.Suite
	repository *reminder.FakeRepository
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.repository = reminder.NewFakeRepository()
	suite.service = New(
		logging.NewFakeLogger(),
		suite.repository,
		func() time.Time { return Now },
	)
}

func TestListDueRemindersService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestDueSelection() {
	cases := []struct {
		id        string
		dueAt     time.Time
		delivered bool
		isDue     bool
	}{
		{id: "past", dueAt: Now.Add(-time.Minute), isDue: true},
		{id: "exactly-now", dueAt: Now, isDue: true},
		{id: "future", dueAt: Now.Add(time.Nanosecond), isDue: false},
		{id: "delivered-past", dueAt: Now.Add(-time.Hour), delivered: true, isDue: false},
		{id: "zero-due-time", dueAt: time.Time{}, isDue: true},
	}

	for _, testCase := range cases {
		s.Run(testCase.id, func() {
			s.SetupTest()
			s.repository.Reminders = []reminder.Reminder{
				{ID: reminder.ID(testCase.id), DueAt: testCase.dueAt, Delivered: testCase.delivered},
			}

			result, err := s.service.Run(context.Background(), Input{})

			s.Require().Nil(err)
			if testCase.isDue {
				s.Len(result.Reminders, 1)
			} else {
				s.Len(result.Reminders, 0)
			}
		})
	}
}

func (s *testSuite) TestKeepsStoreOrderAndDoesNotMutate() {
	s.repository.Reminders = []reminder.Reminder{
		{ID: "3", DueAt: Now.Add(-time.Second)},
		{ID: "1", DueAt: Now.Add(time.Second)},
		{ID: "2", DueAt: Now.Add(-time.Hour)},
	}

	result, err := s.service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Require().Len(result.Reminders, 2)
	s.Equal(reminder.ID("3"), result.Reminders[0].ID)
	s.Equal(reminder.ID("2"), result.Reminders[1].ID)
	s.Len(s.repository.UpdateWith, 0)

	again, err := s.service.Run(context.Background(), Input{})
	s.Require().Nil(err)
	s.Equal(result.Reminders, again.Reminders)
}
