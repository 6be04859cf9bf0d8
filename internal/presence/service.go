package presence

import (
	"context"
	"errors"
)

var ErrBadRequest = errors.New("documentId and userId are required")

// Service wraps a presence repository with input checks.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

func (s *Service) Join(ctx context.Context, documentID, userID string) error {
	if documentID == "" || userID == "" {
		return ErrBadRequest
	}
	return s.repo.Join(ctx, documentID, userID)
}

func (s *Service) Leave(ctx context.Context, documentID, userID string) error {
	if documentID == "" || userID == "" {
		return ErrBadRequest
	}
	return s.repo.Leave(ctx, documentID, userID)
}

func (s *Service) Active(ctx context.Context, documentID string) ([]string, error) {
	if documentID == "" {
		return nil, ErrBadRequest
	}
	return s.repo.Active(ctx, documentID)
}
