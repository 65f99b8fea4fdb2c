package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLRU_SetGetEvict(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewLRU(2)
	require.NoError(t, c.Set(ctx, "a", "1", 0))
	require.NoError(t, c.Set(ctx, "b", "2", 0))

	v, ok, err := c.Get(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "1", v)

	// "b" is least recently used now
	require.NoError(t, c.Set(ctx, "c", "3", 0))
	_, ok, _ = c.Get(ctx, "b")
	require.False(t, ok)
	require.Equal(t, 2, c.Len())
}

func TestLRU_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c := NewLRU(0)
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	_, ok, _ := c.Get(ctx, "k")
	require.True(t, ok)

	clock = clock.Add(time.Minute)
	_, ok, _ = c.Get(ctx, "k")
	require.False(t, ok)
	require.Zero(t, c.Len())
}
