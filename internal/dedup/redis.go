package dedup

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "webhook:event:"

// RedisStore tracks processed webhook event ids with a bounded retention
// window. SET NX makes the first-claim atomic across replicas; once the TTL
// expires a redelivery falls through to the idempotent reservation update.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl == 0 {
		ttl = 72 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// MarkProcessed records the event id and reports whether this delivery is the
// first one seen.
func (s *RedisStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.client.SetNX(ctx, keyPrefix+eventID, time.Now().UTC().Format(time.RFC3339), s.ttl).Result()
}

// Release drops the claim on an event id so a redelivery can settle it.
// Called when settlement fails after the id was already claimed.
func (s *RedisStore) Release(ctx context.Context, eventID string) error {
	return s.client.Del(ctx, keyPrefix+eventID).Err()
}
