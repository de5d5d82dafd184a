package prefs

import (
	"sync"

	"github.com/samber/mo"
)

// MemoryStore is a Store that lives only as long as the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) (mo.Option[string], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.values[key]; ok {
		return mo.Some(value), nil
	}
	return mo.None[string](), nil
}

// Set implements Store.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}
