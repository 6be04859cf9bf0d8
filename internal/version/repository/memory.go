package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SehajBehl/docvault/internal/version"
)

// MemoryLog keeps version records in process memory. Used by unit tests and
// as the fallback store when MongoDB is not configured.
type MemoryLog struct {
	mu       sync.RWMutex
	versions map[string][]*version.Version // documentID -> records in append order
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{versions: make(map[string][]*version.Version)}
}

func (m *MemoryLog) Append(ctx context.Context, documentID, content, authorID string) (*version.Version, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	seq := m.versions[documentID]
	v := &version.Version{
		VersionID:  uuid.NewString(),
		DocumentID: documentID,
		Number:     len(seq) + 1,
		Content:    content,
		AuthorID:   authorID,
		CreatedAt:  time.Now().UTC(),
	}
	m.versions[documentID] = append(seq, v)
	return clone(v), nil
}

func (m *MemoryLog) GetAll(ctx context.Context, documentID string) ([]*version.Version, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seq := m.versions[documentID]
	out := make([]*version.Version, 0, len(seq))
	for _, v := range seq {
		out = append(out, clone(v))
	}
	return out, nil
}

func (m *MemoryLog) GetByVersionID(ctx context.Context, documentID, versionID string) (*version.Version, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.versions[documentID] {
		if v.VersionID == versionID {
			return clone(v), nil
		}
	}
	return nil, version.ErrNotFound
}

func (m *MemoryLog) Latest(ctx context.Context, documentID string) (*version.Version, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seq := m.versions[documentID]
	if len(seq) == 0 {
		return nil, nil
	}
	return clone(seq[len(seq)-1]), nil
}

// clone hands callers their own copy so stored records stay immutable.
func clone(v *version.Version) *version.Version {
	c := *v
	return &c
}
