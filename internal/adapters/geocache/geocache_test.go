package geocache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/freshcart/internal/domain"
)

var btm = []domain.AddressCandidate{{Name: "BTM Layout", City: "Bengaluru"}}

func TestMemoryCache_SetGet(t *testing.T) {
	cache, err := NewMemoryCache(10, time.Hour, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, found, err := cache.Get(ctx, "reverse:12.9166:77.6101")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "reverse:12.9166:77.6101", btm))

	got, found, err := cache.Get(ctx, "reverse:12.9166:77.6101")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, btm, got)

	// Returned slices are copies
	got[0].Name = "changed"
	again, _, _ := cache.Get(ctx, "reverse:12.9166:77.6101")
	assert.Equal(t, "BTM Layout", again[0].Name)
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	cache, err := NewMemoryCache(10, time.Minute, func() time.Time { return now })
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", btm))

	now = now.Add(59 * time.Second)
	_, found, _ := cache.Get(ctx, "k")
	assert.True(t, found)

	now = now.Add(time.Second)
	_, found, _ = cache.Get(ctx, "k")
	assert.False(t, found)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache, err := NewMemoryCache(2, time.Hour, nil)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", btm))
	require.NoError(t, cache.Set(ctx, "b", btm))
	_, _, _ = cache.Get(ctx, "a")
	require.NoError(t, cache.Set(ctx, "c", btm))

	_, found, _ := cache.Get(ctx, "b")
	assert.False(t, found)
	_, found, _ = cache.Get(ctx, "a")
	assert.True(t, found)
}

func TestNew(t *testing.T) {
	cache, err := New(StoreTypeMemory, WithMaxEntries(5), WithTTL(time.Minute))
	require.NoError(t, err)
	assert.IsType(t, &MemoryCache{}, cache)

	cache, err = New(StoreTypeNone)
	require.NoError(t, err)
	assert.Nil(t, cache)

	_, err = New(StoreTypeRedis)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	defer client.Close()
	cache, err = New(StoreTypeRedis, WithRedisClient(client))
	require.NoError(t, err)
	assert.IsType(t, &RedisCache{}, cache)

	_, err = New("memcached")
	assert.ErrorIs(t, err, ErrInvalidStoreType)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "redis://:bad@[::1")
	assert.Error(t, err)
}
