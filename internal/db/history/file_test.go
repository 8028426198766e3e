package history

import (
	"brainbox/internal/core/domain/chat"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type fileTestSuite struct {
	suite.Suite
	path string
	repo *FileHistoryRepository
}

func (s *fileTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "chathistory.json")
	repo, err := NewFileHistoryRepository(s.path)
	s.Require().Nil(err)
	s.repo = repo
}

func TestFileHistoryRepository(t *testing.T) {
	suite.Run(t, new(fileTestSuite))
}

func (s *fileTestSuite) TestAppendAndRead() {
	ctx := context.Background()
	s.Nil(s.repo.Append(ctx,
		chat.Message{Who: chat.WhoUser, Text: "what is go?"},
		chat.Message{Who: chat.WhoBot, Text: "A programming language."},
	))

	messages, err := s.repo.Read(ctx)
	s.Nil(err)
	s.Equal([]chat.Message{
		{Who: chat.WhoUser, Text: "what is go?"},
		{Who: chat.WhoBot, Text: "A programming language."},
	}, messages)
}

func (s *fileTestSuite) TestAppendKeepsLastMessages() {
	ctx := context.Background()
	for ix := 0; ix < chat.MAX_HISTORY_LEN+10; ix++ {
		s.Require().Nil(s.repo.Append(ctx, chat.Message{Who: chat.WhoUser, Text: fmt.Sprint(ix)}))
	}

	messages, err := s.repo.Read(ctx)
	s.Nil(err)
	s.Require().Len(messages, chat.MAX_HISTORY_LEN)
	s.Equal("10", messages[0].Text)
	s.Equal(fmt.Sprint(chat.MAX_HISTORY_LEN+9), messages[len(messages)-1].Text)
}

func (s *fileTestSuite) TestExportEmpty() {
	data, err := s.repo.Export(context.Background())
	s.Nil(err)
	s.Equal("[]", string(data))
}

func (s *fileTestSuite) TestExportReturnsFileContent() {
	ctx := context.Background()
	s.Require().Nil(s.repo.Append(ctx, chat.Message{Who: chat.WhoUser, Text: "héllo <b>"}))

	data, err := s.repo.Export(ctx)
	s.Nil(err)
	expected := "[\n  {\n    \"who\": \"user\",\n    \"text\": \"héllo <b>\"\n  }\n]\n"
	s.Equal(expected, string(data))

	onDisk, err := os.ReadFile(s.path)
	s.Require().Nil(err)
	s.Equal(onDisk, data)
}

func (s *fileTestSuite) TestClear() {
	ctx := context.Background()
	s.Require().Nil(s.repo.Append(ctx, chat.Message{Who: chat.WhoUser, Text: "hi"}))

	s.Nil(s.repo.Clear(ctx))

	messages, err := s.repo.Read(ctx)
	s.Nil(err)
	s.Len(messages, 0)
	data, err := s.repo.Export(ctx)
	s.Nil(err)
	s.Equal("[]\n", string(data))
}

func (s *fileTestSuite) TestMalformedFileReadsAsEmpty() {
	s.Require().Nil(os.WriteFile(s.path, []byte("[{"), 0o644))

	messages, err := s.repo.Read(context.Background())
	s.Nil(err)
	s.Len(messages, 0)

	s.Nil(s.repo.Append(context.Background(), chat.Message{Who: chat.WhoBot, Text: "ok"}))
	messages, err = s.repo.Read(context.Background())
	s.Nil(err)
	s.Len(messages, 1)
}
