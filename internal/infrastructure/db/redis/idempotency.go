package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "idempotency:lead:"

// IdempotencyStore maps an Idempotency-Key to the id of the lead it created.
// Key format: idempotency:lead:<key>
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the lead id stored under key, or "" when the key is unknown or expired.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (string, error) {
	id, err := s.client.Get(ctx, idempotencyKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, nil
}

// Remember records leadID under key until ttl elapses. An existing entry is
// kept so the first lead created under a key stays the answer.
func (s *IdempotencyStore) Remember(ctx context.Context, key, leadID string, ttl time.Duration) error {
	if err := s.client.SetNX(ctx, idempotencyKey(key), leadID, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func idempotencyKey(key string) string {
	return idempotencyPrefix + key
}
