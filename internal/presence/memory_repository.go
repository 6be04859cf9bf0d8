package presence

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository is the in-process fallback used in tests and when Redis is
// not configured.
type MemoryRepository struct {
	mu       sync.Mutex
	lastSeen map[string]map[string]time.Time // documentID -> userID -> last heartbeat
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryRepository{
		lastSeen: make(map[string]map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (m *MemoryRepository) Join(ctx context.Context, documentID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.lastSeen[documentID]
	if !ok {
		doc = make(map[string]time.Time)
		m.lastSeen[documentID] = doc
	}
	doc[userID] = m.now().UTC()
	return nil
}

func (m *MemoryRepository) Leave(ctx context.Context, documentID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if doc, ok := m.lastSeen[documentID]; ok {
		delete(doc, userID)
	}
	return nil
}

func (m *MemoryRepository) Active(ctx context.Context, documentID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := m.lastSeen[documentID]
	cutoff := m.now().UTC().Add(-m.ttl)
	users := make([]string, 0, len(doc))
	for userID, seen := range doc {
		if seen.Before(cutoff) {
			delete(doc, userID)
			continue
		}
		users = append(users, userID)
	}
	sort.Strings(users)
	return users, nil
}
