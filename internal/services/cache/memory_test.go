package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), time.Minute))

	value, ok := mc.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)

	_, ok = mc.Get(ctx, "missing")
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", []byte("v"), 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	_, ok := mc.Get(ctx, "k")
	assert.False(t, ok)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, mc.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, mc.Delete(ctx, "a"))
	_, ok := mc.Get(ctx, "a")
	assert.False(t, ok)

	require.NoError(t, mc.Clear(ctx))
	_, ok = mc.Get(ctx, "b")
	assert.False(t, ok)
}

func TestMemoryCache_Overwrite(t *testing.T) {
	mc := NewMemoryCache()
	defer mc.Stop()
	ctx := context.Background()

	require.NoError(t, mc.Set(ctx, "k", []byte("old"), time.Minute))
	require.NoError(t, mc.Set(ctx, "k", []byte("new"), time.Minute))

	value, ok := mc.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}
