package repository

import (
	"context"
	"errors"
	"time"

	"github.com/SehajBehl/docvault/internal/document"
)

var ErrNotFound = errors.New("document metadata not found")

// Repository persists document metadata. Upsert covers both registration and
// the implicit creation that happens on a document's first save.
type Repository interface {
	Upsert(ctx context.Context, m *document.Meta) (*document.Meta, error)
	Get(ctx context.Context, id string) (*document.Meta, error)
	List(ctx context.Context) ([]*document.Meta, error)
	// Touch advances UpdatedAt, creating the record when it does not exist.
	Touch(ctx context.Context, id string, at time.Time) error
}
