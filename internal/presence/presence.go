package presence

import (
	"context"
	"time"
)

// DefaultTTL is how long an editor counts as active without a heartbeat.
const DefaultTTL = 90 * time.Second

// Repository tracks which users currently have a document open. Entries age
// out after the TTL unless the client re-joins (heartbeat).
type Repository interface {
	Join(ctx context.Context, documentID, userID string) error
	Leave(ctx context.Context, documentID, userID string) error
	Active(ctx context.Context, documentID string) ([]string, error)
}
