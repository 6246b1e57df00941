package kv

import (
	"context"
	"sync"
)

// MemoryStore はテスト・ローカル開発用のインメモリKV。
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]map[string]string // sessionID -> key -> value
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]map[string]string{}}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[sessionID][key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, sessionID string, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values[sessionID] == nil {
		s.values[sessionID] = map[string]string{}
	}
	s.values[sessionID][key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values[sessionID], key)
	return nil
}
