package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"saved-hub/domain/model"
	"saved-hub/domain/repository"
	"saved-hub/infrastructure/configuration"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the serializable part of the session state in Redis
// with a TTL. Client handles are not serialized; the usecase rebuilds them
// from the stored credentials.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ repository.ISessionStore = (*RedisStore)(nil)

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg configuration.RedisClient, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func sessionKey(sid string) string { return "session:" + sid }

func (s *RedisStore) Get(ctx context.Context, sid string) (*model.SessionState, error) {
	b, err := s.client.Get(ctx, sessionKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var state model.SessionState
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("corrupt session payload: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, sid string, state *model.SessionState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sid), b, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, sessionKey(sid)).Err()
}
