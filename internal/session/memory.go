package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore holds snapshots in process memory. Used in tests and in
// deployments without redis.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	snap      Snapshot
	expiresAt time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}, now: time.Now}
}

// WithClock substitutes the time source, used by tests.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.now = now
	return s
}

func (s *MemoryStore) Get(_ context.Context, key string) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	if !ok || s.now().After(entry.expiresAt) {
		delete(s.entries, key)
		return nil, nil
	}
	snap := entry.snap
	return &snap, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, snap Snapshot, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{snap: snap, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}
