package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisrepo "github.com/muhammadheryan/bhrc-portal/repository/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (redisrepo.Repository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisrepo.NewRepository(client), mr
}

func TestRepository_Session(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "jti-1", 42, time.Minute))
	assert.True(t, mr.Exists("session:jti-1"))

	id, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)

	mr.FastForward(2 * time.Minute)
	_, err = repo.GetSession(ctx, "jti-1")
	assert.True(t, redisrepo.IsNil(err))

	require.NoError(t, repo.SetSession(ctx, "jti-2", 7, time.Minute))
	require.NoError(t, repo.DeleteSession(ctx, "jti-2"))
	_, err = repo.GetSession(ctx, "jti-2")
	assert.True(t, redisrepo.IsNil(err))
}

func TestRepository_TakeSession(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "refresh-1", 42, time.Hour))

	id, err := repo.TakeSession(ctx, "refresh-1")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.False(t, mr.Exists("session:refresh-1"))

	_, err = repo.TakeSession(ctx, "refresh-1")
	assert.True(t, redisrepo.IsNil(err))
}

func TestRepository_DeleteUserSessions(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.SetSession(ctx, "access-1", 42, time.Minute))
	require.NoError(t, repo.SetSession(ctx, "refresh-1", 42, time.Hour))
	require.NoError(t, repo.SetSession(ctx, "other-1", 7, time.Hour))

	require.NoError(t, repo.DeleteUserSessions(ctx, 42))
	assert.False(t, mr.Exists("session:access-1"))
	assert.False(t, mr.Exists("session:refresh-1"))
	assert.False(t, mr.Exists("user_sessions:42"))
	assert.True(t, mr.Exists("session:other-1"))

	// nothing indexed is fine
	require.NoError(t, repo.DeleteUserSessions(ctx, 99))
}

func TestRepository_GetSetDelete(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, "settings:snapshot")
	assert.True(t, redisrepo.IsNil(err))

	require.NoError(t, repo.SetWithTTL(ctx, "settings:snapshot", `{"a":1}`, time.Minute))
	val, err := repo.Get(ctx, "settings:snapshot")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, val)

	require.NoError(t, repo.Delete(ctx, "settings:snapshot"))
	_, err = repo.Get(ctx, "settings:snapshot")
	assert.True(t, redisrepo.IsNil(err))
}

func TestRepository_IncrWindow(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, left, err := repo.IncrWindow(ctx, "ratelimit:contact:1.2.3.4", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, i, count)
		assert.True(t, left > 0 && left <= time.Hour)
	}

	mr.FastForward(time.Hour + time.Second)
	count, _, err := repo.IncrWindow(ctx, "ratelimit:contact:1.2.3.4", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
