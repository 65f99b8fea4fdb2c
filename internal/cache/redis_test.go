package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedis_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewRedis(ctx, "127.0.0.1:1", "", 0)
	require.Error(t, err)
}

func TestRedis_RoundTrip(t *testing.T) {
	addr := os.Getenv("MINDMATES_TEST_REDIS")
	if addr == "" {
		t.Skip("MINDMATES_TEST_REDIS not set")
	}
	ctx := context.Background()
	c := NewRedisWithClient(redis.NewClient(&redis.Options{Addr: addr}))
	defer c.Close()

	_, ok, err := c.Get(ctx, "missing-key")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	v, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v", v)
}
