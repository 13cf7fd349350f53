// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-portal-client/internal/logger"
)

const redisPingTimeout = 5 * time.Second

// redisKV is the subset of *redis.Client the Redis backend depends on.
type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Close() error
}

// redisLocalStorage stores entries as plain string keys of the form
// portal:<origin>:<key>. Entries never expire.
type redisLocalStorage struct {
	client redisKV
	origin string
}

// ConnectRedis parses a redis:// URL, opens a client and pings it.
func ConnectRedis(ctx context.Context, dsn string) (*redis.Client, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// NewRedisLocalStorage returns a [LocalStorage] scoped to origin.
func NewRedisLocalStorage(client redisKV, origin string) LocalStorage {
	return &redisLocalStorage{client: client, origin: origin}
}

func (s *redisLocalStorage) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", false, nil
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "redisLocalStorage.Get").
			Str("key", key).
			Msg("failed to read local storage entry")
		return "", false, fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}

	return value, true, nil
}

func (s *redisLocalStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisLocalStorage.Set").
			Str("key", key).
			Msg("failed to write local storage entry")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}
	return nil
}

func (s *redisLocalStorage) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, s.key(k))
	}

	if err := s.client.Del(ctx, full...).Err(); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "redisLocalStorage.Remove").
			Strs("keys", keys).
			Msg("failed to remove local storage entries")
		return fmt.Errorf("%w: %w", ErrRedisCommand, err)
	}
	return nil
}

func (s *redisLocalStorage) Close() error {
	return s.client.Close()
}

func (s *redisLocalStorage) key(k string) string {
	return fmt.Sprintf("portal:%s:%s", s.origin, k)
}
