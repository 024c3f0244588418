// Package session persists the process-wide "current user" identity so
// it survives restarts. The service assumes one active session per
// process; the store holds at most one user id.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is an opaque key-value holder for the current session identity.
// CurrentUserID returns an empty string when no session is open.
type Store interface {
	SetCurrentUser(ctx context.Context, userID string) error
	CurrentUserID(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

type redisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore returns a Redis-backed session store.
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) Store {
	return &redisStore{client: client, key: keyPrefix + ":current_user", ttl: ttl}
}

func (s *redisStore) SetCurrentUser(ctx context.Context, userID string) error {
	return s.client.Set(ctx, s.key, userID, s.ttl).Err()
}

func (s *redisStore) CurrentUserID(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

type memoryStore struct {
	mu     sync.RWMutex
	userID string
}

// NewMemoryStore returns an in-process session store.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) SetCurrentUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
	return nil
}

func (s *memoryStore) CurrentUserID(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID, nil
}

func (s *memoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = ""
	return nil
}
