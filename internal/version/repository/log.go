package repository

import (
	"context"

	"github.com/SehajBehl/docvault/internal/version"
)

// Log is the append-only store of version records for every document.
// Append assigns the next versionNumber for the document; implementations
// must guarantee that two concurrent appends on the same document never
// produce the same number and never silently drop one of them.
type Log interface {
	Append(ctx context.Context, documentID, content, authorID string) (*version.Version, error)
	// GetAll returns every version of the document, versionNumber ascending.
	// An unknown document yields an empty slice, not an error.
	GetAll(ctx context.Context, documentID string) ([]*version.Version, error)
	// GetByVersionID returns version.ErrNotFound when the versionId does not
	// belong to the given document.
	GetByVersionID(ctx context.Context, documentID, versionID string) (*version.Version, error)
	// Latest returns the version with the highest versionNumber, or nil when
	// the document has never been saved.
	Latest(ctx context.Context, documentID string) (*version.Version, error)
}
