package knowledge

import (
	"context"
	"errors"
	"io"
)

var (
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
	ErrInvalidImage            = errors.New("invalid image")
)

// Slot names one piece of uploaded knowledge kept between chat messages.
type Slot struct {
	v string
}

func (s Slot) String() string {
	return s.v
}

var (
	SlotDocument = Slot{v: "doc"}
	SlotImage    = Slot{v: "img"}
)

var Slots = []Slot{SlotDocument, SlotImage}

type Repository interface {
	Save(ctx context.Context, slot Slot, text string) error
	Read(ctx context.Context, slot Slot) (text string, exists bool, err error)
	Delete(ctx context.Context, slot Slot) error
}

type DocumentTextExtractor interface {
	ExtractText(ctx context.Context, filename string, content io.Reader) (string, error)
}

type ImageTextRecognizer interface {
	RecognizeText(ctx context.Context, image io.Reader) (string, error)
}
