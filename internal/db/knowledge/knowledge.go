package knowledge

import (
	"brainbox/internal/core/domain/knowledge"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileMode = 0o644

// FileKnowledgeRepository stores each slot as a plain UTF-8 text file named
// after the slot (doc.txt, img.txt) inside one directory.
type FileKnowledgeRepository struct {
	dir  string
	lock sync.RWMutex
}

func NewFileKnowledgeRepository(dir string) (*FileKnowledgeRepository, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve knowledge directory: %w", err)
	}
	return &FileKnowledgeRepository{dir: absDir}, nil
}

func (r *FileKnowledgeRepository) path(slot knowledge.Slot) string {
	return filepath.Join(r.dir, slot.String()+".txt")
}

func (r *FileKnowledgeRepository) Save(ctx context.Context, slot knowledge.Slot, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create knowledge directory: %w", err)
	}
	if err := os.WriteFile(r.path(slot), []byte(text), fileMode); err != nil {
		return fmt.Errorf("write %s slot: %w", slot, err)
	}
	return nil
}

// Read reports exists=false when the slot file is absent. An unreadable
// file reads as an existing empty slot.
func (r *FileKnowledgeRepository) Read(ctx context.Context, slot knowledge.Slot) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	data, err := os.ReadFile(r.path(slot))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", true, nil
	}
	return string(data), true, nil
}

func (r *FileKnowledgeRepository) Delete(ctx context.Context, slot knowledge.Slot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	err := os.Remove(r.path(slot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s slot: %w", slot, err)
	}
	return nil
}
