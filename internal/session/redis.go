package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key prefixes match the storage keys the website used for its local copy.
const (
	userKeyPrefix = "iaam_user:"
	jwtKeyPrefix  = "iaam_jwt:"
)

type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Snapshot, error) {
	raw, err := s.client.Get(ctx, userKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: get: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap.User); err != nil {
		return nil, fmt.Errorf("session: decode snapshot: %w", err)
	}
	jwt, err := s.client.Get(ctx, jwtKeyPrefix+key).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("session: get credential: %w", err)
	}
	snap.JWT = jwt
	return &snap, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, snap Snapshot, ttl time.Duration) error {
	raw, err := json.Marshal(snap.User)
	if err != nil {
		return fmt.Errorf("session: encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, userKeyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("session: set: %w", err)
	}
	if err := s.client.Set(ctx, jwtKeyPrefix+key, snap.JWT, ttl).Err(); err != nil {
		return fmt.Errorf("session: set credential: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, userKeyPrefix+key, jwtKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
