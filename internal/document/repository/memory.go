package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SehajBehl/docvault/internal/document"
)

// MemoryRepo is the in-process metadata store used by unit tests and when
// MongoDB is not configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Meta
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*document.Meta)}
}

func (m *MemoryRepo) Upsert(ctx context.Context, meta *document.Meta) (*document.Meta, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := m.store[meta.ID]
	if !ok {
		stored := *meta
		stored.CreatedAt = now
		stored.UpdatedAt = now
		m.store[meta.ID] = &stored
		out := stored
		return &out, nil
	}
	if meta.Name != "" {
		existing.Name = meta.Name
	}
	if meta.OwnerID != "" {
		existing.OwnerID = meta.OwnerID
	}
	existing.UpdatedAt = now
	out := *existing
	return &out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*document.Meta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	meta, ok := m.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *meta
	return &out, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*document.Meta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Meta, 0, len(m.store))
	for _, meta := range m.store {
		c := *meta
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRepo) Touch(ctx context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	meta, ok := m.store[id]
	if !ok {
		m.store[id] = &document.Meta{ID: id, CreatedAt: at, UpdatedAt: at}
		return nil
	}
	meta.UpdatedAt = at
	return nil
}
