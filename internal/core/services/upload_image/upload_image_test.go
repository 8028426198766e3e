package uploadimage

import (
	"brainbox/internal/core/domain/knowledge"
	"brainbox/internal/core/domain/logging"
	"brainbox/internal/core/services"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger     *logging.FakeLogger
	recognizer *knowledge.FakeImageTextRecognizer
	knowledge  *knowledge.FakeRepository
	service    services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.logger = logging.NewFakeLogger()
	suite.recognizer = knowledge.NewFakeImageTextRecognizer("OPEN 9-5")
	suite.knowledge = knowledge.NewFakeRepository()
	suite.service = New(suite.logger, suite.recognizer, suite.knowledge)
}

func TestUploadImageService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccess() {
	result, err := s.service.Run(context.Background(), Input{Content: bytes.NewReader([]byte{1})})

	s.Require().Nil(err)
	s.Equal("OPEN 9-5", result.OCRText)
	s.Equal("OPEN 9-5", s.knowledge.Texts[knowledge.SlotImage])
}

func (s *testSuite) TestEmptyTextIsStored() {
	s.recognizer.Text = ""

	result, err := s.service.Run(context.Background(), Input{Content: bytes.NewReader(nil)})

	s.Require().Nil(err)
	s.Equal("", result.OCRText)
	text, exists, _ := s.knowledge.Read(context.Background(), knowledge.SlotImage)
	s.True(exists)
	s.Equal("", text)
}

func (s *testSuite) TestInvalidImage() {
	s.recognizer.Error = knowledge.ErrInvalidImage

	_, err := s.service.Run(context.Background(), Input{Content: bytes.NewReader(nil)})

	s.ErrorIs(err, knowledge.ErrInvalidImage)
	s.Len(s.knowledge.Texts, 0)
	s.Equal(0, s.logger.CountWithLevel(logging.ERROR))
}

func (s *testSuite) TestRecognizerError() {
	s.recognizer.Error = errors.New("quota exceeded")

	_, err := s.service.Run(context.Background(), Input{Content: bytes.NewReader(nil)})

	s.NotNil(err)
	s.Len(s.knowledge.Texts, 0)
	s.Equal(1, s.logger.CountWithLevel(logging.ERROR))
}
