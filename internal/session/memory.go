package session

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps documents in process memory. It backs development runs
// without redis and the test suites.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key string, into any) error {
	s.mu.Lock()
	raw, ok := s.docs[key]
	s.mu.Unlock()

	if !ok {
		return ErrNoDocument
	}
	return json.Unmarshal(raw, into)
}

func (s *MemoryStore) Set(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.docs[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.docs, key)
	s.mu.Unlock()
	return nil
}
