package rediscache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slotbook/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (*AppointmentViewCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewAppointmentViewCache(rdb, ttl), mr
}

func TestAppointmentViewCache_SetGetInvalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	_, ok, err := cache.Get(ctx, 0, gen)
	require.NoError(t, err)
	assert.False(t, ok)

	views := map[string]domain.AppointmentView{
		"0.0_1.19_1.20": {Address: "123 Main St", Day: 1, TimeChunks: "19,20"},
	}
	require.NoError(t, cache.Set(ctx, 0, gen, views))

	got, ok, err := cache.Get(ctx, 0, gen)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, views, got)

	_, ok, err = cache.Get(ctx, 1, 0)
	require.NoError(t, err)
	assert.False(t, ok, "other providers must not share the entry")

	require.NoError(t, cache.Invalidate(ctx, 0))
	next, err := cache.Generation(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, gen+1, next)

	_, ok, err = cache.Get(ctx, 0, next)
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = cache.Get(ctx, 0, gen)
	require.NoError(t, err)
	assert.False(t, ok, "old generation entry must be dropped")
}

func TestAppointmentViewCache_LateSetAfterInvalidateIsNotServed(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	before, err := cache.Generation(ctx, 0)
	require.NoError(t, err)

	// A writer commits and invalidates while a reader still holds rows
	// loaded under the old generation.
	require.NoError(t, cache.Invalidate(ctx, 0))
	require.NoError(t, cache.Set(ctx, 0, before, map[string]domain.AppointmentView{"0.0_1.21": {Day: 1}}))

	current, err := cache.Generation(ctx, 0)
	require.NoError(t, err)
	_, ok, err := cache.Get(ctx, 0, current)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppointmentViewCache_EmptyMapIsAHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 3, 0, map[string]domain.AppointmentView{}))
	got, ok, err := cache.Get(ctx, 3, 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestAppointmentViewCache_Expires(t *testing.T) {
	cache, mr := newTestCache(t, 10*time.Second)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, 0, 0, map[string]domain.AppointmentView{"a": {Day: 1}}))
	assert.Equal(t, 10*time.Second, mr.TTL(appointmentsKey(0, 0)))

	mr.FastForward(11 * time.Second)
	_, ok, err := cache.Get(ctx, 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAppointmentViewCache_CorruptGenerationIsAnError(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	require.NoError(t, mr.Set(generationKey(0), "not-a-number"))

	_, err := cache.Generation(context.Background(), 0)
	assert.Error(t, err)
}

func TestAppointmentViewCache_DefaultTTL(t *testing.T) {
	cache, _ := newTestCache(t, 0)
	assert.Equal(t, DefaultViewTTL, cache.ttl)
}
