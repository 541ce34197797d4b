package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory backend used by tests. Values round-trip through
// JSON so it behaves like FileStore.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

func (s *MemStore) Get(key string, dest any) error {
	s.mu.RLock()
	b, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return ErrKeyNotFound
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("decoding key %s: %w", key, err)
	}
	return nil
}

func (s *MemStore) Set(key string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encoding key %s: %w", key, err)
	}

	s.mu.Lock()
	s.data[key] = b
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
