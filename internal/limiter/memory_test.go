package limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemory_LocksAfterMaxFails(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	l := NewMemory(testPolicy)
	l.now = func() time.Time { return now }
	ctx := context.Background()
	ip := HashIP("10.0.0.1")

	for i := 1; i < testPolicy.MaxFails; i++ {
		blocked, _, err := l.Failure(ctx, "ann", ip)
		require.NoError(t, err)
		require.False(t, blocked, "failure %d", i)
	}
	blocked, wait, err := l.Failure(ctx, "ann", ip)
	require.NoError(t, err)
	require.True(t, blocked)
	require.Equal(t, testPolicy.BlockFor, wait)

	ok, wait, err := l.Allow(ctx, "ann", ip)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, testPolicy.BlockFor, wait)

	// other address and other user are unaffected
	ok, _, _ = l.Allow(ctx, "ann", HashIP("10.0.0.2"))
	require.True(t, ok)
	ok, _, _ = l.Allow(ctx, "bob", ip)
	require.True(t, ok)

	now = now.Add(testPolicy.BlockFor + time.Second)
	ok, _, err = l.Allow(ctx, "ann", ip)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemory_WindowAndSuccessReset(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	l := NewMemory(testPolicy)
	l.now = func() time.Time { return now }
	ctx := context.Background()
	ip := HashIP("10.0.0.1")

	_, _, _ = l.Failure(ctx, "ann", ip)
	_, _, _ = l.Failure(ctx, "ann", ip)
	now = now.Add(testPolicy.Window + time.Minute)
	blocked, _, err := l.Failure(ctx, "ann", ip)
	require.NoError(t, err)
	require.False(t, blocked, "stale failures must not count")

	_, _, _ = l.Failure(ctx, "ann", ip)
	require.NoError(t, l.Success(ctx, "ann", ip))
	blocked, _, _ = l.Failure(ctx, "ann", ip)
	require.False(t, blocked, "success must clear the count")
}
