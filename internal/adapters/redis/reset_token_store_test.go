package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetTokenStore_SaveAndConsume(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewResetTokenStore(client)
	ctx := context.Background()

	err := store.Save(ctx, "tok-1", "user-123", 30*time.Minute)
	require.NoError(t, err)

	userID, err := store.Consume(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	// The token is gone after the first use.
	_, err = store.Consume(ctx, "tok-1")
	assert.Equal(t, ErrNotFound, err)
}

func TestResetTokenStore_ConsumeUnknown(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewResetTokenStore(client)
	ctx := context.Background()

	_, err := store.Consume(ctx, "never-issued")
	assert.Equal(t, ErrNotFound, err)

	_, err = store.Consume(ctx, "")
	assert.Equal(t, ErrNotFound, err)
}

func TestResetTokenStore_SaveValidation(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewResetTokenStore(client)
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", "user-123", time.Minute))
	assert.Error(t, store.Save(ctx, "tok-1", "", time.Minute))
	assert.Error(t, store.Save(ctx, "tok-1", "user-123", 0))
}

func TestResetTokenStore_Expiry(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewResetTokenStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-short", "user-123", 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)

	_, err := store.Consume(ctx, "tok-short")
	assert.Equal(t, ErrNotFound, err)
}
