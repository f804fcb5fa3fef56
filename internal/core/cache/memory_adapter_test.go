package cache

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAdapter_GetSet(t *testing.T) {
	adapter := NewMemoryAdapter(nil)
	ctx := context.Background()

	value := []byte("value")
	require.NoError(t, adapter.Set(ctx, "k", value, 0))

	// Mutating the caller's slice must not leak into the cache.
	value[0] = 'X'

	got, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}

func TestMemoryAdapter_NotFound(t *testing.T) {
	adapter := NewMemoryAdapter(nil)

	_, err := adapter.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryAdapter_TTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	adapter := NewMemoryAdapter(clock)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "short", []byte("1"), time.Second))
	require.NoError(t, adapter.Set(ctx, "forever", []byte("2"), 0))

	_, err := adapter.Get(ctx, "short")
	require.NoError(t, err)

	clock.Advance(time.Second)

	_, err = adapter.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := adapter.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), got)
}

func TestMemoryAdapter_DeleteAndClose(t *testing.T) {
	adapter := NewMemoryAdapter(nil)
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "a", []byte("1"), 0))
	require.NoError(t, adapter.Set(ctx, "b", []byte("2"), 0))

	require.NoError(t, adapter.Delete(ctx, "a"))
	require.NoError(t, adapter.Delete(ctx, "a"))
	_, err := adapter.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, adapter.Ping(ctx))
	require.NoError(t, adapter.Close())
	_, err = adapter.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrNotFound)
}
