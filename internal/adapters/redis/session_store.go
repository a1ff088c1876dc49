package redis

// Package redis provides Redis-based adapters for sessions and sign-in throttling.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
)

// lastRefreshPrefix keys the marker recording when a session was last
// extended. The marker shares the session TTL so it disappears with it.
const lastRefreshPrefix = "last_session_refresh:"

// SessionStore is a Redis-based session store for production use.
// It handles TTL semantics automatically based on session ExpiresAt.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.prefix + sess.ID
	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		// Session is already expired, don't save it
		return errors.New("session is expired")
	}

	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	key := s.prefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// Double-check expiration (Redis TTL should handle this, but be defensive)
	if time.Now().After(sess.ExpiresAt) {
		// Clean up expired session; if cleanup fails bubble the error up.
		if deleteErr := s.Delete(ctx, id); deleteErr != nil {
			return domainauth.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return domainauth.Session{}, ErrNotFound
	}

	return sess, nil
}

// Refresh extends the session expiry, rewrites the stored value, and
// records the refresh marker with the same TTL.
func (s *SessionStore) Refresh(ctx context.Context, id string, extend time.Duration) (domainauth.Session, error) {
	if extend <= 0 {
		return domainauth.Session{}, errors.New("refresh duration must be positive")
	}

	sess, err := s.Get(ctx, id)
	if err != nil {
		return domainauth.Session{}, err
	}

	sess.ExpiresAt = time.Now().Add(extend)
	data, err := json.Marshal(sess)
	if err != nil {
		return domainauth.Session{}, fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.prefix+id, data, extend)
	pipe.Set(ctx, lastRefreshPrefix+id, time.Now().UTC().Format(time.RFC3339Nano), extend)
	if _, err := pipe.Exec(ctx); err != nil {
		return domainauth.Session{}, fmt.Errorf("redis refresh: %w", err)
	}
	return sess, nil
}

// LastRefresh returns when the session was last extended, or the zero
// time when no marker exists.
func (s *SessionStore) LastRefresh(ctx context.Context, id string) (time.Time, error) {
	if id == "" {
		return time.Time{}, nil
	}

	data, err := s.client.Get(ctx, lastRefreshPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("redis get refresh marker: %w", err)
	}

	t, err := time.Parse(time.RFC3339Nano, data)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse refresh marker: %w", err)
	}
	return t, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}

	return s.client.Del(ctx, s.prefix+id, lastRefreshPrefix+id).Err()
}

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}
