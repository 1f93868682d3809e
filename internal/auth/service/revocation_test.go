package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevocationList(t *testing.T) (*redisRevocationList, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	list := NewRedisRevocationList(client).(*redisRevocationList)
	list.now = func() time.Time { return issuedAt }
	return list, server
}

func TestRedisRevocationList_RevokeAndCheck(t *testing.T) {
	ctx := context.Background()
	list, server := newTestRevocationList(t)

	revoked, err := list.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	err = list.Revoke(ctx, "token-1", issuedAt.Add(time.Hour))
	require.NoError(t, err)

	revoked, err = list.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.Equal(t, time.Hour, server.TTL(revokedKeyPrefix+"token-1"))

	server.FastForward(time.Hour + time.Second)

	revoked, err = list.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked, "entry must expire with the token")
}

func TestRedisRevocationList_SkipsExpiredTokens(t *testing.T) {
	ctx := context.Background()
	list, server := newTestRevocationList(t)

	err := list.Revoke(ctx, "token-2", issuedAt.Add(-time.Minute))
	require.NoError(t, err)

	assert.False(t, server.Exists(revokedKeyPrefix+"token-2"))
}

func TestRedisRevocationList_EmptyID(t *testing.T) {
	ctx := context.Background()
	list, _ := newTestRevocationList(t)

	require.NoError(t, list.Revoke(ctx, "", issuedAt.Add(time.Hour)))
	revoked, err := list.IsRevoked(ctx, "")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationList_ServerDown(t *testing.T) {
	ctx := context.Background()
	list, server := newTestRevocationList(t)
	server.Close()

	_, err := list.IsRevoked(ctx, "token-3")
	assert.Error(t, err)
}

func TestOpenRedis(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := OpenRedis(context.Background(), "redis://"+server.Addr()+"/0")
	require.NoError(t, err)
	assert.NoError(t, client.Close())

	_, err = OpenRedis(context.Background(), "://bad")
	assert.Error(t, err)
}
