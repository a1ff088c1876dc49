package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/guiatur/guiatur-api/internal/ports"
)

// ResetTokenStore keeps password reset tokens in Redis. The TTL bounds the
// reset window and Consume removes the token atomically, so a delivered
// link works at most once.
type ResetTokenStore struct {
	client redis.UniversalClient
	prefix string
}

var _ ports.ResetTokenStore = (*ResetTokenStore)(nil)

// NewResetTokenStore creates a Redis-based reset token store.
func NewResetTokenStore(client redis.UniversalClient) *ResetTokenStore {
	return &ResetTokenStore{
		client: client,
		prefix: "pwreset:",
	}
}

// NewResetTokenStoreWithPrefix creates a reset token store with a custom key prefix.
func NewResetTokenStoreWithPrefix(client redis.UniversalClient, prefix string) *ResetTokenStore {
	return &ResetTokenStore{
		client: client,
		prefix: prefix,
	}
}

func (s *ResetTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if userID == "" {
		return errors.New("user ID cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("token TTL must be positive")
	}

	return s.client.Set(ctx, s.prefix+token, userID, ttl).Err()
}

// Consume returns the user ID a token was issued for and deletes the key
// in the same round trip.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrNotFound
	}

	userID, err := s.client.GetDel(ctx, s.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis getdel: %w", err)
	}
	return userID, nil
}
