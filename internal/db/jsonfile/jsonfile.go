package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	fileMode        = 0o644
	dirMode         = 0o755
	tempFilePattern = ".%s-*.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// Store keeps a list of T as one pretty-printed JSON array on disk. Every
// write rewrites the whole file. All stores opened on the same path share
// one lock, so Update is a single-writer load-modify-save section.
type Store[T any] struct {
	path string
	mu   *sync.RWMutex
}

func New[T any](path string) (*Store[T], error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	absPath = filepath.Clean(absPath)
	return &Store[T]{path: absPath, mu: lockForPath(absPath)}, nil
}

func (s *Store[T]) Path() string {
	return s.path
}

// Load returns the stored list. A missing, empty or malformed file reads as
// an empty list; only context errors are returned.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load(), nil
}

// Raw returns the file content as is, or nil when the file is missing.
func (s *Store[T]) Raw(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	return data, nil
}

func (s *Store[T]) Save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(items)
}

// Update loads the list, passes it to fn and saves what fn returns. Nothing
// is written when fn fails.
func (s *Store[T]) Update(ctx context.Context, fn func(items []T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := fn(s.load())
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.save(items)
}

func (s *Store[T]) load() []T {
	data, err := os.ReadFile(s.path)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return []T{}
	}
	return items
}

func (s *Store[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(items); err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, fmt.Sprintf(tempFilePattern, filepath.Base(s.path)))
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(buf.Bytes()); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp store file: %w", err)
	}

	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp store file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	cleanup = false
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
