package knowledge

import (
	"context"
	"io"
	"sync"
)

type FakeRepository struct {
	Texts       map[Slot]string
	SaveError   error
	DeleteError error
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{Texts: map[Slot]string{}}
}

func (r *FakeRepository) Save(ctx context.Context, slot Slot, text string) error {
	if r.SaveError != nil {
		return r.SaveError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.Texts[slot] = text
	return nil
}

func (r *FakeRepository) Read(ctx context.Context, slot Slot) (string, bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	text, ok := r.Texts[slot]
	return text, ok, nil
}

func (r *FakeRepository) Delete(ctx context.Context, slot Slot) error {
	if r.DeleteError != nil {
		return r.DeleteError
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.Texts, slot)
	return nil
}

type FakeDocumentTextExtractor struct {
	Text      string
	Error     error
	Filenames []string
}

func NewFakeDocumentTextExtractor(text string) *FakeDocumentTextExtractor {
	return &FakeDocumentTextExtractor{Text: text}
}

func (e *FakeDocumentTextExtractor) ExtractText(ctx context.Context, filename string, content io.Reader) (string, error) {
	e.Filenames = append(e.Filenames, filename)
	if e.Error != nil {
		return "", e.Error
	}
	return e.Text, nil
}

type FakeImageTextRecognizer struct {
	Text  string
	Error error
	Calls int
}

func NewFakeImageTextRecognizer(text string) *FakeImageTextRecognizer {
	return &FakeImageTextRecognizer{Text: text}
}

func (r *FakeImageTextRecognizer) RecognizeText(ctx context.Context, image io.Reader) (string, error) {
	r.Calls++
	if r.Error != nil {
		return "", r.Error
	}
	return r.Text, nil
}
