package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/flavorvault/recipe-service/internal/domain"
	"github.com/flavorvault/recipe-service/internal/ports"
)

var _ ports.SessionStore = (*RedisSessionStore)(nil)

// RedisSessionStore keeps per-session state as JSON values with a TTL.
// Expiry doubles as the idle timeout for sessions that never complete
// verification; nothing stored here is meant to outlive the key.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates the session state adapter.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID uuid.UUID) string {
	return "session:" + sessionID.String()
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID uuid.UUID) (*domain.SessionState, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var state domain.SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, sessionID uuid.UUID, state domain.SessionState, ttl time.Duration) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(sessionID), raw, ttl).Err()
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
