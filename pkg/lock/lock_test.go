package lock

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *RedisLocker) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisLocker(client)
}

func TestRedisLocker_TryLock(t *testing.T) {
	mr, locker := newRedis(t)
	ctx := context.Background()

	release, ok, err := locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("sweep"))

	_, ok, err = locker.TryLock(ctx, "sweep", time.Minute)
	assert.NoError(t, err)
	assert.False(t, ok)

	release()
	assert.False(t, mr.Exists("sweep"))

	_, ok, err = locker.TryLock(ctx, "sweep", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisLocker_Expiry(t *testing.T) {
	mr, locker := newRedis(t)
	ctx := context.Background()

	release, ok, err := locker.TryLock(ctx, "sweep", time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)
	_, ok, err = locker.TryLock(ctx, "sweep", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// the stale holder must not drop the new owner's key
	release()
	assert.True(t, mr.Exists("sweep"))
}

func TestRedisLocker_Unavailable(t *testing.T) {
	mr, locker := newRedis(t)
	mr.Close()

	_, ok, err := locker.TryLock(context.Background(), "sweep", time.Minute)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLocal(t *testing.T) {
	release, ok, err := Local{}.TryLock(context.Background(), "sweep", time.Minute)
	assert.NoError(t, err)
	assert.True(t, ok)
	release()
}
