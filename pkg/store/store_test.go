package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewFromClient(rdb)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestGetSet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}

func TestSetNX(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	ok, err := s.SetNX(ctx, "k", "first", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SetNX(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "first", val)
}

func TestIncr(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := s.Incr(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCompareAndSwap(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	// Missing key counts as "" — first writer wins.
	ok, err := s.CompareAndSwap(ctx, "k", "", "a")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CompareAndSwap(ctx, "k", "stale", "b")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CompareAndSwap(ctx, "k", "a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	val, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "b", val)
}

func TestSortedSetWindow(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	now := float64(time.Now().Unix())

	require.NoError(t, s.ZAdd(ctx, "calls", now-7200, "old"))
	require.NoError(t, s.ZAdd(ctx, "calls", now-10, "recent-1"))
	require.NoError(t, s.ZAdd(ctx, "calls", now, "recent-2"))

	count, err := s.ZCount(ctx, "calls", now-3600, now+1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	require.NoError(t, s.ZRemRangeByScore(ctx, "calls", 0, now-3600))
	count, err = s.ZCount(ctx, "calls", 0, now+1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestHashCache(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, err := s.HGetAll(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.HSet(ctx, "sess", map[string]string{
		"state":   "connecting",
		"history": `[{"from":"received","to":"queued"}]`,
	}, time.Hour))

	fields, err := s.HGetAll(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, "connecting", fields["state"])
}

func TestLockOwnership(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	owner, err := s.AcquireLock(ctx, "lock", 30*time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, owner)

	// Second acquire fails while held.
	second, err := s.AcquireLock(ctx, "lock", 30*time.Second)
	require.NoError(t, err)
	assert.Empty(t, second)

	// A non-owner release is a no-op.
	require.NoError(t, s.ReleaseLock(ctx, "lock", "not-the-owner"))
	exists, err := s.Exists(ctx, "lock")
	require.NoError(t, err)
	assert.True(t, exists)

	// Owner release works.
	require.NoError(t, s.ReleaseLock(ctx, "lock", owner))
	exists, err = s.Exists(ctx, "lock")
	require.NoError(t, err)
	assert.False(t, exists)

	// Expired lock can be reacquired.
	owner, err = s.AcquireLock(ctx, "lock", time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, owner)
	mr.FastForward(2 * time.Second)
	reacquired, err := s.AcquireLock(ctx, "lock", time.Second)
	require.NoError(t, err)
	assert.NotEmpty(t, reacquired)
}

func TestLockExpiry(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "idem", "completed", 24*time.Hour))
	mr.FastForward(25 * time.Hour)
	_, err := s.Get(ctx, "idem")
	assert.ErrorIs(t, err, ErrNotFound)
}
