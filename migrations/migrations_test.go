package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFS_ContainsInit(t *testing.T) {
	t.Parallel()

	b, err := fs.ReadFile(FS, "00001_init.sql")
	require.NoError(t, err)
	s := string(b)
	require.True(t, strings.HasPrefix(s, "-- +goose Up"))
	require.Contains(t, s, "CREATE TABLE user_state")
	require.Contains(t, s, "-- +goose Down")
}

func TestFS_ContainsAuthLimiter(t *testing.T) {
	t.Parallel()

	b, err := fs.ReadFile(FS, "00002_auth_limiter.sql")
	require.NoError(t, err)
	require.Contains(t, string(b), "CREATE TABLE auth_limiter")
	require.Contains(t, string(b), "PRIMARY KEY (username, ip_hash)")
}
