package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSlots keeps each slot as <key>.json inside a single directory.
type FileSlots struct {
	mu  sync.Mutex
	dir string
}

func NewFileSlots(dir string) (*FileSlots, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create slot dir: %w", err)
	}
	return &FileSlots{dir: dir}, nil
}

func (s *FileSlots) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileSlots) Load(key string, v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("%w: slot %q: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

func (s *FileSlots) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename so a crash mid-write never leaves a torn slot.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *FileSlots) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (s *FileSlots) Ping(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}
