package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemSlots is an in-memory Slots, used in tests and for throwaway runs.
type MemSlots struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemSlots() *MemSlots {
	return &MemSlots{m: map[string]string{}}
}

func (s *MemSlots) Load(key string, v any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.m[key]
	s.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("%w: slot %q: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

func (s *MemSlots) Save(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.m[key] = string(raw)
	s.mu.Unlock()
	return nil
}

func (s *MemSlots) Clear(key string) error {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
	return nil
}

func (s *MemSlots) Ping(ctx context.Context) error { return nil }

// Put stores a raw payload without going through json.Marshal. Tests use it
// to plant malformed slots.
func (s *MemSlots) Put(key, raw string) {
	s.mu.Lock()
	s.m[key] = raw
	s.mu.Unlock()
}
