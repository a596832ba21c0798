package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/obolus/obolus"
	"github.com/obolus/obolus/ports"
)

// RedisStore is a Redis implementation of the ChallengeStore interface.
// Challenges and consumed markers expire through Redis TTLs.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// expiryGrace keeps challenges around past their expiry so a late
// response is reported as expired rather than unknown.
const expiryGrace = time.Hour

// NewRedisStore creates a new Redis store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "obolus:",
	}
}

// Save records an issued challenge with a TTL matching its expiry
func (s *RedisStore) Save(ctx context.Context, challenge *obolus.Challenge) error {
	payload, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to encode challenge: %w", err)
	}

	key := s.prefix + "challenge:" + challenge.ID
	if err := s.client.Set(ctx, key, payload, challenge.Remaining()+expiryGrace).Err(); err != nil {
		return fmt.Errorf("failed to save challenge: %w", obolus.ErrStoreOperationFailed)
	}
	return nil
}

// Get retrieves an issued challenge by id
func (s *RedisStore) Get(ctx context.Context, id string) (*obolus.Challenge, error) {
	key := s.prefix + "challenge:" + id
	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, obolus.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", obolus.ErrStoreOperationFailed)
	}

	return obolus.ParseChallenge(payload)
}

// MarkConsumed records that a challenge id has been used
func (s *RedisStore) MarkConsumed(ctx context.Context, id string, status obolus.Status, ttl time.Duration) error {
	key := s.prefix + "consumed:" + id
	if err := s.client.Set(ctx, key, string(status), ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark challenge consumed: %w", obolus.ErrStoreOperationFailed)
	}
	return nil
}

// IsConsumed reports whether a challenge id has already been used
func (s *RedisStore) IsConsumed(ctx context.Context, id string) (bool, error) {
	key := s.prefix + "consumed:" + id
	val, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check consumed marker: %w", obolus.ErrStoreOperationFailed)
	}
	return val > 0, nil
}

var _ ports.ChallengeStore = (*RedisStore)(nil)
