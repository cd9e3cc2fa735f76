package session

import (
	"context"
	"sync"
	"time"

	"saved-hub/domain/model"
	"saved-hub/domain/repository"
)

// MemoryStore keeps session state in process memory. Because it holds live
// pointers, in-memory client handles survive across requests; entries expire
// after the configured TTL of inactivity.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	state     *model.SessionState
	expiresAt time.Time
}

var _ repository.ISessionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		entries: map[string]memoryEntry{},
		now:     time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, sid string) (*model.SessionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sid]
	if !ok {
		return nil, nil
	}
	if s.now().After(e.expiresAt) {
		delete(s.entries, sid)
		return nil, nil
	}
	return e.state, nil
}

func (s *MemoryStore) Save(ctx context.Context, sid string, state *model.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sid] = memoryEntry{state: state, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sid)
	return nil
}
