// Package session binds opaque tokens to authenticated account ids. The
// session deliberately carries no role: the account record is the single
// source of truth and is re-read from the store on every request.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gitlord217/jobhubproapp/internal/common"
)

type Store interface {
	Create(ctx context.Context, accountID common.UUID) (string, error)
	Get(ctx context.Context, token string) (common.UUID, error)
	Destroy(ctx context.Context, token string) error
}

const keyPrefix = "session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, accountID common.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+token, accountID.String(), s.ttl).Err(); err != nil {
		return "", common.NewError(common.CodeInternal, "failed to create session", err)
	}
	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (common.UUID, error) {
	value, err := s.client.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", common.NewError(common.CodeUnauthenticated, "session not found", err)
	}
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to load session", err)
	}
	accountID, err := common.ParseUUID(value)
	if err != nil {
		return "", common.NewError(common.CodeUnauthenticated, "invalid session payload", err)
	}
	return accountID, nil
}

func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return common.NewError(common.CodeInternal, "failed to destroy session", err)
	}
	return nil
}
