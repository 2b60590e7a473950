package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	savedAt time.Time
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// SavedAt reports when the current token was stored.
func (s *MemoryStore) SavedAt(ctx context.Context) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return time.Time{}, ErrNoToken
	}
	return s.savedAt, nil
}

func (s *MemoryStore) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.savedAt = s.now()
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.savedAt = time.Time{}
	s.mu.Unlock()
	return nil
}
