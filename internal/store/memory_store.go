package store

import (
	"sync"

	"pokeroster/internal/domain"
)

// MemoryStore is a map-backed store for tests and throwaway sessions.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(v), true, nil
}

func (s *MemoryStore) GetMany(keys ...string) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := s.m[k]; ok {
			out[k] = cloneBytes(v)
		}
	}
	return out, nil
}

func (s *MemoryStore) Commit(b domain.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range b {
		if v == nil {
			delete(s.m, k)
			continue
		}
		s.m[k] = cloneBytes(v)
	}
	return nil
}

var _ domain.KeyValueStore = (*MemoryStore)(nil)
