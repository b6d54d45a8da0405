// Package memory provides an in-process implementation of ports.SessionStore.
//
// It is the natural choice for tests and for single-process hosts where the
// session mapping lives and dies with the process. Values are stored as-is,
// so types survive round-trips exactly (no JSON widening).
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/igormicadei/sessionbind/pkg/domain"
)

// Store implements ports.SessionStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]any
	mu   sync.RWMutex
}

// NewStore creates a new empty in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]any),
	}
}

// Get retrieves the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSlotNotInitialized
	}
	return val, nil
}

// Set stores a value under key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Contains reports whether key exists.
func (s *Store) Contains(ctx context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]
	return ok, nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// List returns all keys with the given prefix, sorted for determinism.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Len returns the number of stored slots. Intended for tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
