package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SehajBehl/docvault/internal/document"
	"github.com/SehajBehl/docvault/internal/document/repository"
)

// Service exposes document metadata operations used by the handler layer and
// by the version API (RecordWrite). Metadata is optional decoration: a
// document exists as soon as its first version does, registered or not.
type Service interface {
	Register(ctx context.Context, id, name, ownerID string) (*document.Meta, error)
	Get(ctx context.Context, id string) (*document.Meta, error)
	List(ctx context.Context) ([]*document.Meta, error)
	RecordWrite(ctx context.Context, documentID string) error
}

func NewService(repo repository.Repository) Service {
	return &metaService{repo: repo}
}

func NewMemoryService() Service {
	return NewService(repository.NewMemoryRepo())
}

func NewMongoService(col *mongo.Collection) Service {
	return NewService(repository.NewMongoRepo(col))
}

type metaService struct {
	repo repository.Repository
}

func (s *metaService) Register(ctx context.Context, id, name, ownerID string) (*document.Meta, error) {
	return s.repo.Upsert(ctx, &document.Meta{ID: id, Name: name, OwnerID: ownerID})
}

func (s *metaService) Get(ctx context.Context, id string) (*document.Meta, error) {
	return s.repo.Get(ctx, id)
}

func (s *metaService) List(ctx context.Context) ([]*document.Meta, error) {
	return s.repo.List(ctx)
}

// RecordWrite keeps UpdatedAt in step with the version log, creating the
// metadata record on a document's first save.
func (s *metaService) RecordWrite(ctx context.Context, documentID string) error {
	return s.repo.Touch(ctx, documentID, time.Now().UTC())
}
