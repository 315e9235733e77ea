package memory

import (
	"context"
	"sync"
)

// Store implements ports.ExclusionStore in memory.
// Safe for concurrent use. Close keeps the data, so the same handle can be
// reused after a simulated restart.
type Store struct {
	mu   sync.RWMutex
	data map[string]struct{}
}

// New creates a Store seeded with phrases.
func New(phrases ...string) *Store {
	s := &Store{data: make(map[string]struct{}, len(phrases))}
	for _, p := range phrases {
		s.data[p] = struct{}{}
	}
	return s
}

// Contains reports whether the phrase was added.
func (s *Store) Contains(ctx context.Context, phrase string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.data[phrase]
	return ok, nil
}

// Add records the phrase in memory.
func (s *Store) Add(ctx context.Context, phrase string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		s.data = make(map[string]struct{})
	}
	s.data[phrase] = struct{}{}
	return nil
}

// Len returns the number of phrases held.
func (s *Store) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data), nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
