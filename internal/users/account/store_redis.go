// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/mangateca/internal/platform/constants"
)

// RedisSessionStore implements [SessionStore] with one key per session.
type RedisSessionStore struct {
	client redis.UniversalClient
}

// NewRedisSessionStore creates a new Redis-backed SessionStore.
func NewRedisSessionStore(client redis.UniversalClient) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

// Save stores the session with the token lifetime as TTL.
func (store *RedisSessionStore) Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error {
	if err := store.client.Set(ctx, sessionKey(sessionID), accountID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}
	return nil
}

// Exists reports whether the session is still registered.
func (store *RedisSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	count, err := store.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_exists_failed: %w", err)
	}
	return count > 0, nil
}

// Revoke removes the session. Revoking an unknown session is not an error.
func (store *RedisSessionStore) Revoke(ctx context.Context, sessionID string) error {
	if err := store.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}

// StatelessSessionStore is used when no Redis is configured: every signed,
// unexpired token is valid and logout cannot revoke it.
type StatelessSessionStore struct{}

func (StatelessSessionStore) Save(context.Context, string, string, time.Duration) error { return nil }

func (StatelessSessionStore) Exists(context.Context, string) (bool, error) { return true, nil }

func (StatelessSessionStore) Revoke(context.Context, string) error { return nil }
