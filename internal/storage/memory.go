package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps the city for the lifetime of the process only
type MemoryStore struct {
	mu    sync.RWMutex
	city  string
	isSet bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.city, s.isSet, nil
}

func (s *MemoryStore) Set(_ context.Context, city string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.city = city
	s.isSet = true
	return nil
}
