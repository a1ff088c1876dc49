package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domainauth "github.com/guiatur/guiatur-api/internal/domain/auth"
)

const (
	// attemptKeyPrefix counts failed sign-ins per normalized email. The
	// companion "<key>_time" records when the window opened.
	attemptKeyPrefix = "auth_attempts_"
	timeKeySuffix    = "_time"

	defaultMaxAttempts = 5
	defaultWindow      = 15 * time.Minute
)

// LoginThrottle limits failed sign-in attempts per normalized email using
// a fixed window counter in Redis. The window opens on the first failure
// and both keys expire together.
type LoginThrottle struct {
	client redis.UniversalClient
	max    int64
	window time.Duration
}

// NewLoginThrottle creates a throttle with the default limits: five
// failures per fifteen minutes.
func NewLoginThrottle(client redis.UniversalClient) *LoginThrottle {
	return &LoginThrottle{client: client, max: defaultMaxAttempts, window: defaultWindow}
}

// NewLoginThrottleWithLimits creates a throttle with custom limits (useful for tests).
func NewLoginThrottleWithLimits(client redis.UniversalClient, max int, window time.Duration) *LoginThrottle {
	if max <= 0 {
		max = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &LoginThrottle{client: client, max: int64(max), window: window}
}

// Allow reports whether a sign-in attempt may proceed. A missing counter
// always allows; the counter only grows on recorded failures.
func (t *LoginThrottle) Allow(ctx context.Context, email string) (bool, error) {
	count, err := t.client.Get(ctx, t.attemptKey(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("redis get attempts: %w", err)
	}
	return count < t.max, nil
}

// RecordFailure increments the failure counter. The window TTL and the
// timestamp marker are set when the first failure opens the window.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.attemptKey(email)

	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis incr attempts: %w", err)
	}

	// Set expiration on first attempt
	if count == 1 {
		pipe := t.client.TxPipeline()
		pipe.Expire(ctx, key, t.window)
		pipe.Set(ctx, key+timeKeySuffix, time.Now().UTC().Format(time.RFC3339Nano), t.window)
		if _, err := pipe.Exec(ctx); err != nil {
			return fmt.Errorf("redis open attempt window: %w", err)
		}
	}
	return nil
}

// Reset clears the counter and its timestamp, e.g. after a successful sign-in.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	key := t.attemptKey(email)
	return t.client.Del(ctx, key, key+timeKeySuffix).Err()
}

func (t *LoginThrottle) attemptKey(email string) string {
	return attemptKeyPrefix + domainauth.NormalizeEmail(email)
}
