// Package redis provides Redis-based adapters for the stylist client profile.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/target/stylist-web/internal/ports"
)

var _ ports.KeyValueStore = (*KVStore)(nil)

// DefaultPrefix namespaces profile keys so several profiles can share one Redis.
const DefaultPrefix = "stylist:profile:"

// KVStore is a Redis-backed key/value store for profiles shared across client processes.
// TTL semantics are delegated to Redis key expiry.
type KVStore struct {
	client redis.UniversalClient
	prefix string
}

// NewKVStore creates a Redis key/value store with the default prefix.
func NewKVStore(client redis.UniversalClient) *KVStore {
	return &KVStore{
		client: client,
		prefix: DefaultPrefix,
	}
}

// NewKVStoreWithPrefix creates a Redis key/value store with a custom key prefix,
// e.g. one per profile name.
func NewKVStoreWithPrefix(client redis.UniversalClient, prefix string) *KVStore {
	return &KVStore{
		client: client,
		prefix: prefix,
	}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, nil
	}

	data, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return data, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil // Nothing to delete
	}
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// TTL reports the remaining lifetime of key; ok is false when the key is absent.
// A key without expiry reports (0, true).
func (s *KVStore) TTL(ctx context.Context, key string) (time.Duration, bool, error) {
	d, err := s.client.TTL(ctx, s.prefix+key).Result()
	if err != nil {
		return 0, false, fmt.Errorf("redis ttl: %w", err)
	}
	switch {
	case d == -2*time.Nanosecond || d == -2*time.Second:
		return 0, false, nil
	case d < 0:
		return 0, true, nil
	default:
		return d, true, nil
	}
}
