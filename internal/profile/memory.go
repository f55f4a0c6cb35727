package profile

import (
	"context"
	"sync"

	"github.com/ridebite/backend/internal/session"
)

// MemoryStore is a map-backed session.ProfileStore for tests and local
// development without Postgres.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]session.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]session.User)}
}

func (s *MemoryStore) Get(_ context.Context, id string) (*session.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, false, nil
	}
	return &doc, true, nil
}

func (s *MemoryStore) Put(_ context.Context, user *session.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[user.ID] = *user
	return nil
}

func (s *MemoryStore) Empty(_ context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs) == 0, nil
}
