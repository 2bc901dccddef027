package storage

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory blob store. It backs tests and any run that
// does not need durability.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) LoadAll(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	out := append([]byte(nil), data...)
	return out, nil
}

func (s *MemoryStore) SaveAll(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}
