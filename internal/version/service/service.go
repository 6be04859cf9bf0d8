package service

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SehajBehl/docvault/internal/version"
	"github.com/SehajBehl/docvault/internal/version/repository"
	"github.com/SehajBehl/docvault/pkg/metrics"
)

// Service is the public façade over the version log used by the handler
// layer. Every successful Save or Rollback appends exactly one new version;
// nothing ever mutates or deletes an existing one. "Current" is always
// derived from the log (highest versionNumber), never tracked in a separate
// mutable field.
type Service interface {
	Save(ctx context.Context, documentID, content, authorID string) (*version.Version, error)
	Rollback(ctx context.Context, documentID, targetVersionID, authorID string) (*version.Version, error)
	History(ctx context.Context, documentID string) ([]*version.Version, error)
	Current(ctx context.Context, documentID string) (*version.Version, error)
}

// NewStore returns a Service over the given log.
func NewStore(log repository.Log) Service {
	return &store{log: log}
}

// NewMemoryStore returns a Service backed by the in-memory log, used in
// tests and when MongoDB is not configured.
func NewMemoryStore() Service {
	return NewStore(repository.NewMemoryLog())
}

// NewMongoStore returns a Service backed by a MongoDB collection. The caller
// owns the client and collection lifecycle.
func NewMongoStore(col *mongo.Collection) Service {
	return NewStore(repository.NewMongoLog(col))
}

type store struct {
	log   repository.Log
	locks sync.Map // documentID -> *sync.Mutex
}

// lockDocument serializes writers of one document around the
// compute-next-number + persist sequence. Writers of different documents
// never contend.
func (s *store) lockDocument(documentID string) func() {
	v, _ := s.locks.LoadOrStore(documentID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *store) Save(ctx context.Context, documentID, content, authorID string) (*version.Version, error) {
	// empty content is a legal savable state, so only the ids are checked
	if documentID == "" {
		return nil, fmt.Errorf("%w: documentId is required", version.ErrValidation)
	}
	if authorID == "" {
		return nil, fmt.Errorf("%w: authorId is required", version.ErrValidation)
	}

	unlock := s.lockDocument(documentID)
	defer unlock()

	v, err := s.log.Append(ctx, documentID, content, authorID)
	if err != nil {
		return nil, err
	}
	metrics.VersionsCreated.WithLabelValues("save").Inc()
	return v, nil
}

func (s *store) Rollback(ctx context.Context, documentID, targetVersionID, authorID string) (*version.Version, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: documentId is required", version.ErrValidation)
	}
	if targetVersionID == "" {
		return nil, fmt.Errorf("%w: versionId is required", version.ErrValidation)
	}
	if authorID == "" {
		return nil, fmt.Errorf("%w: authorId is required", version.ErrValidation)
	}

	unlock := s.lockDocument(documentID)
	defer unlock()

	target, err := s.log.GetByVersionID(ctx, documentID, targetVersionID)
	if err != nil {
		return nil, err
	}
	// A rollback is recorded as a fresh save carrying the target's content.
	// Every version between target and head stays in the log untouched, and
	// rolling back to the current version still appends a new record.
	v, err := s.log.Append(ctx, documentID, target.Content, authorID)
	if err != nil {
		return nil, err
	}
	metrics.VersionsCreated.WithLabelValues("rollback").Inc()
	return v, nil
}

// History returns all versions of the document, newest first. An unknown
// document yields an empty slice.
func (s *store) History(ctx context.Context, documentID string) ([]*version.Version, error) {
	all, err := s.log.GetAll(ctx, documentID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// Current returns the version with the highest versionNumber, or nil when
// the document has never been saved.
func (s *store) Current(ctx context.Context, documentID string) (*version.Version, error) {
	return s.log.Latest(ctx, documentID)
}
