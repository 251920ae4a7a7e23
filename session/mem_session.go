package session

import (
	"context"
	"sync"
	"time"
)

// MemStore is the in-process session store used by the test suite.
type MemStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]AppSession
}

func NewMemStore(ttl time.Duration) *MemStore {
	return &MemStore{ttl: ttl, sessions: map[string]AppSession{}}
}

func (s *MemStore) Create(ctx context.Context, id, userID string) error {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = AppSession{
		UserID:    userID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	return nil
}

func (s *MemStore) Get(ctx context.Context, id string) (*AppSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	as, ok := s.sessions[id]
	if !ok || as.ExpiresAt <= time.Now().Unix() {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	out := as
	return &out, nil
}

func (s *MemStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
