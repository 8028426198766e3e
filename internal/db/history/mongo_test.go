package history

import (
	"brainbox/internal/core/domain/chat"
	"brainbox/internal/db"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type mongoTestSuite struct {
	suite.Suite
	repo *MongoHistoryRepository
}

func (s *mongoTestSuite) SetupTest() {
	s.repo = NewMongoHistoryRepository(db.CreateTestMongoDatabase(s.T()))
}

func TestMongoHistoryRepository(t *testing.T) {
	suite.Run(t, new(mongoTestSuite))
}

func (s *mongoTestSuite) TestAppendAndRead() {
	ctx := context.Background()
	s.Nil(s.repo.Append(ctx,
		chat.Message{Who: chat.WhoUser, Text: "q"},
		chat.Message{Who: chat.WhoBot, Text: "a"},
	))

	messages, err := s.repo.Read(ctx)
	s.Nil(err)
	s.Equal([]chat.Message{{Who: chat.WhoUser, Text: "q"}, {Who: chat.WhoBot, Text: "a"}}, messages)
}

func (s *mongoTestSuite) TestAppendKeepsLastMessages() {
	ctx := context.Background()
	batch := make([]chat.Message, 0, chat.MAX_HISTORY_LEN+5)
	for ix := 0; ix < chat.MAX_HISTORY_LEN+5; ix++ {
		batch = append(batch, chat.Message{Who: chat.WhoUser, Text: fmt.Sprint(ix)})
	}
	s.Require().Nil(s.repo.Append(ctx, batch...))

	messages, err := s.repo.Read(ctx)
	s.Nil(err)
	s.Require().Len(messages, chat.MAX_HISTORY_LEN)
	s.Equal("5", messages[0].Text)
}

func (s *mongoTestSuite) TestExportAndClear() {
	ctx := context.Background()
	data, err := s.repo.Export(ctx)
	s.Nil(err)
	s.Equal("[]", string(data))

	s.Require().Nil(s.repo.Append(ctx, chat.Message{Who: chat.WhoUser, Text: "hi"}))
	data, err = s.repo.Export(ctx)
	s.Nil(err)
	var items []map[string]string
	s.Require().Nil(json.Unmarshal(data, &items))
	s.Equal([]map[string]string{{"who": "user", "text": "hi"}}, items)

	s.Nil(s.repo.Clear(ctx))
	messages, err := s.repo.Read(ctx)
	s.Nil(err)
	s.Len(messages, 0)
}
