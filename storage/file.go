package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mayatech/storefront/random"
)

// FileStore persists each key as a JSON file under a single directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, dest any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return ErrKeyNotFound
	}
	if err != nil {
		return fmt.Errorf("reading key %s: %w", key, err)
	}

	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("decoding key %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Set(key string, val any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("encoding key %s: %w", key, err)
	}

	// unique tmp name so a crashed writer never leaves a partial file
	// where the next Set expects to place its own
	tmp := s.path(key) + ".tmp-" + random.String(8)
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting key %s: %w", key, err)
	}
	return nil
}
