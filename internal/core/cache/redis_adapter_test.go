package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisAdapter) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := NewRedisAdapter("redis://"+mr.Addr(), "content:")
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return mr, adapter
}

func TestRedisAdapter_GetSet(t *testing.T) {
	mr, adapter := newTestRedis(t)
	ctx := context.Background()

	value := []byte(`{"title":"Hello"}`)
	err := adapter.Set(ctx, "hero.json", value, 0)
	require.NoError(t, err)

	retrieved, err := adapter.Get(ctx, "hero.json")
	require.NoError(t, err)
	assert.Equal(t, value, retrieved)

	// Keys are namespaced.
	assert.True(t, mr.Exists("content:hero.json"))
}

func TestRedisAdapter_GetNotFound(t *testing.T) {
	_, adapter := newTestRedis(t)

	_, err := adapter.Get(context.Background(), "missing.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "key not found")
}

func TestRedisAdapter_Delete(t *testing.T) {
	_, adapter := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "tools.json", []byte("{}"), 0))
	require.NoError(t, adapter.Delete(ctx, "tools.json"))

	_, err := adapter.Get(ctx, "tools.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisAdapter_TTL(t *testing.T) {
	mr, adapter := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "ttl.json", []byte("{}"), time.Second))

	_, err := adapter.Get(ctx, "ttl.json")
	assert.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = adapter.Get(ctx, "ttl.json")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisAdapter_Ping(t *testing.T) {
	mr, adapter := newTestRedis(t)

	assert.NoError(t, adapter.Ping(context.Background()))

	mr.Close()
	assert.Error(t, adapter.Ping(context.Background()))
}

func TestRedisAdapter_InvalidURL(t *testing.T) {
	_, err := NewRedisAdapter("invalid://url", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse Redis URL")
}
