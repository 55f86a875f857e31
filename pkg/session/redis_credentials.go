package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCredentialStore persists the token in redis, letting a fleet of
// short-lived processes share one session slot.
type RedisCredentialStore struct {
	client *redis.Client
	key    string
}

// NewRedisCredentialStore creates a store writing to the given key. An empty
// key falls back to DefaultCredentialKey.
func NewRedisCredentialStore(client *redis.Client, key string) *RedisCredentialStore {
	if key == "" {
		key = DefaultCredentialKey
	}
	return &RedisCredentialStore{client: client, key: key}
}

func (r *RedisCredentialStore) Get(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCredentialNotFound
		}
		return "", fmt.Errorf("read credential from redis: %w", err)
	}
	return token, nil
}

func (r *RedisCredentialStore) Set(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key, token, 0).Err(); err != nil {
		return fmt.Errorf("write credential to redis: %w", err)
	}
	return nil
}

func (r *RedisCredentialStore) Remove(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("remove credential from redis: %w", err)
	}
	return nil
}
