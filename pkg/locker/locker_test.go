package locker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMutualExclusion запускает n горутин на один ключ и проверяет,
// что критическую секцию одновременно держит не больше одной
func assertMutualExclusion(t *testing.T, l Locker) {
	t.Helper()

	const workers = 8
	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			release, err := l.Lock(ctx, "staff:7")
			if !assert.NoError(t, err) {
				return
			}
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxSeen)
				if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
			assert.NoError(t, release())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
}

func TestLocal_MutualExclusion(t *testing.T) {
	l := NewLocal()
	assertMutualExclusion(t, l)
	assert.Equal(t, 0, l.size(), "entries must be cleaned up")
}

func TestLocal_DifferentKeysDoNotBlock(t *testing.T) {
	l := NewLocal()

	releaseA, err := l.Lock(context.Background(), "staff:1")
	require.NoError(t, err)
	defer releaseA()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	releaseB, err := l.Lock(ctx, "staff:2")
	require.NoError(t, err)
	assert.NoError(t, releaseB())
}

func TestLocal_TimesOut(t *testing.T) {
	l := NewLocal()

	release, err := l.Lock(context.Background(), "staff:1")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "staff:1")
	assert.ErrorIs(t, err, ErrLockTimeout)

	require.NoError(t, release())
	assert.NoError(t, release(), "double release is a no-op")
	assert.Equal(t, 0, l.size())
}

func newRedisLocker(t *testing.T, opts ...RedisOption) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client, append([]RedisOption{WithRetryDelay(time.Millisecond)}, opts...)...), mr
}

func TestRedis_MutualExclusion(t *testing.T) {
	l, _ := newRedisLocker(t)
	assertMutualExclusion(t, l)
}

func TestRedis_TimesOutWhileHeld(t *testing.T) {
	l, mr := newRedisLocker(t)

	release, err := l.Lock(context.Background(), "staff:3")
	require.NoError(t, err)
	assert.True(t, mr.Exists("lock:staff:3"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Lock(ctx, "staff:3")
	assert.ErrorIs(t, err, ErrLockTimeout)

	require.NoError(t, release())
	assert.False(t, mr.Exists("lock:staff:3"))
}

func TestRedis_ExpiredLockIsNotReleasedByStaleOwner(t *testing.T) {
	l, mr := newRedisLocker(t, WithTTL(time.Second))

	staleRelease, err := l.Lock(context.Background(), "staff:4")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	freshRelease, err := l.Lock(context.Background(), "staff:4")
	require.NoError(t, err)

	assert.ErrorIs(t, staleRelease(), ErrNotOwner)
	assert.True(t, mr.Exists("lock:staff:4"), "fresh owner keeps the lock")
	assert.NoError(t, freshRelease())
}

func TestRedis_BackendDown(t *testing.T) {
	l, mr := newRedisLocker(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := l.Lock(ctx, "staff:5")
	assert.ErrorIs(t, err, ErrBackend)
}
