// Package file provides a filesystem-backed implementation of
// ports.SessionStore: all slots live in one JSON document, rewritten on
// every write. Suited to desktop and CLI hosts where a session is one local
// user and write volume is small.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/igormicadei/sessionbind/pkg/domain"
)

// Store implements ports.SessionStore using a single JSON file.
// Safe for concurrent use within one process; it performs no cross-process
// locking.
type Store struct {
	path string

	mu     sync.Mutex
	slots  map[string]any
	loaded bool
}

// NewStore creates a file store at the given path. The file and its parent
// directory are created lazily on first write. If path is empty, it defaults
// to ".sessionbind/session.json".
func NewStore(path string) *Store {
	if path == "" {
		path = filepath.Join(".sessionbind", "session.json")
	}
	return &Store{path: path}
}

// load reads the document into memory once. Missing file means empty store.
func (s *Store) load() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.slots = make(map[string]any)
			s.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read session file: %w", err)
	}

	slots := make(map[string]any)
	if err := json.Unmarshal(data, &slots); err != nil {
		return fmt.Errorf("failed to unmarshal session file: %w", err)
	}
	s.slots = slots
	s.loaded = true
	return nil
}

// flush writes the document back to disk.
func (s *Store) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to ensure session directory: %w", err)
	}

	data, err := json.MarshalIndent(s.slots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session slots: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	val, ok := s.slots[key]
	if !ok {
		return nil, domain.ErrSlotNotInitialized
	}
	return val, nil
}

// Set stores a value under key and flushes the document.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	s.slots[key] = value
	return s.flush()
}

// Contains reports whether key exists.
func (s *Store) Contains(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return false, err
	}
	_, ok := s.slots[key]
	return ok, nil
}

// Delete removes a key and flushes. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	if _, ok := s.slots[key]; !ok {
		return nil
	}
	delete(s.slots, key)
	return s.flush()
}

// List returns all keys with the given prefix, sorted for determinism.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	keys := make([]string, 0)
	for k := range s.slots {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}
