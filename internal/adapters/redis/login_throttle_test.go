package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginThrottle_AllowsFreshEmail(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	throttle := NewLoginThrottle(client)
	ctx := context.Background()

	ok, err := throttle.Allow(ctx, "fresh@example.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLoginThrottle_BlocksAfterLimit(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	throttle := NewLoginThrottle(client)
	ctx := context.Background()
	email := "blocked@example.com"

	for i := 0; i < 5; i++ {
		ok, err := throttle.Allow(ctx, email)
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should be allowed", i+1)
		require.NoError(t, throttle.RecordFailure(ctx, email))
	}

	ok, err := throttle.Allow(ctx, email)
	require.NoError(t, err)
	assert.False(t, ok, "sixth attempt should be blocked")
}

func TestLoginThrottle_KeysAreNormalized(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	throttle := NewLoginThrottleWithLimits(client, 2, time.Minute)
	ctx := context.Background()

	require.NoError(t, throttle.RecordFailure(ctx, "Case@Example.com"))
	require.NoError(t, throttle.RecordFailure(ctx, "  case@example.com "))

	ok, err := throttle.Allow(ctx, "CASE@EXAMPLE.COM")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginThrottle_WindowKeys(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	throttle := NewLoginThrottle(client)
	ctx := context.Background()
	email := "window@example.com"

	require.NoError(t, throttle.RecordFailure(ctx, email))

	// Counter and timestamp keys exist with a shared TTL.
	count, err := client.Get(ctx, "auth_attempts_window@example.com").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stamp, err := client.Get(ctx, "auth_attempts_window@example.com_time").Result()
	require.NoError(t, err)
	opened, err := time.Parse(time.RFC3339Nano, stamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), opened, 5*time.Second)

	ttl, err := client.TTL(ctx, "auth_attempts_window@example.com").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 14*time.Minute)
}

func TestLoginThrottle_Reset(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	throttle := NewLoginThrottleWithLimits(client, 1, time.Minute)
	ctx := context.Background()
	email := "reset@example.com"

	require.NoError(t, throttle.RecordFailure(ctx, email))
	ok, err := throttle.Allow(ctx, email)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, throttle.Reset(ctx, email))
	ok, err = throttle.Allow(ctx, email)
	require.NoError(t, err)
	assert.True(t, ok)
}
