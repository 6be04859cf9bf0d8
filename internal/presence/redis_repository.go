package presence

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository keeps one sorted set per document under key
// "presence:<documentId>", member = userId, score = last-seen unix time.
// Reads trim members older than the TTL before answering, so stale editors
// disappear without any background sweeper.
type RedisRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisRepository creates a Redis-backed presence repository. Prefix may
// be empty; a non-positive ttl falls back to DefaultTTL.
func NewRedisRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisRepository {
	if prefix == "" {
		prefix = "presence:"
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisRepository{client: client, prefix: prefix, ttl: ttl, now: time.Now}
}

func (r *RedisRepository) key(documentID string) string {
	return r.prefix + documentID
}

func (r *RedisRepository) Join(ctx context.Context, documentID, userID string) error {
	now := r.now().UTC()
	key := r.key(documentID)
	if err := r.client.ZAdd(ctx, key, redis.Z{Score: float64(now.Unix()), Member: userID}).Err(); err != nil {
		return err
	}
	// the whole set may expire once nobody heartbeats
	return r.client.Expire(ctx, key, r.ttl+time.Second).Err()
}

func (r *RedisRepository) Leave(ctx context.Context, documentID, userID string) error {
	return r.client.ZRem(ctx, r.key(documentID), userID).Err()
}

func (r *RedisRepository) Active(ctx context.Context, documentID string) ([]string, error) {
	key := r.key(documentID)
	cutoff := r.now().UTC().Add(-r.ttl).Unix()
	if err := r.client.ZRemRangeByScore(ctx, key, "-inf", "("+strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return nil, err
	}
	return r.client.ZRange(ctx, key, 0, -1).Result()
}
