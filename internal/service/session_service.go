package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session"

// SessionStore is the allow-list of issued tokens. A token is honoured only
// while its session entry exists.
type SessionStore interface {
	Save(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, doctorID int64, tokenID string) (bool, error)
	Revoke(ctx context.Context, doctorID int64, tokenID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func sessionKey(doctorID int64, tokenID string) string {
	return fmt.Sprintf("%s:%d:%s", sessionKeyPrefix, doctorID, tokenID)
}

// Save stores the session until the token itself expires
func (s *redisSessionStore) Save(ctx context.Context, doctorID int64, tokenID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(doctorID, tokenID), "valid", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Exists(ctx context.Context, doctorID int64, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(doctorID, tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, doctorID int64, tokenID string) error {
	if err := s.client.Del(ctx, sessionKey(doctorID, tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
