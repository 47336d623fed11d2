package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"slotbook/internal/domain"
)

const (
	appointmentsKeyPrefix = "slotbook:appointments:provider:"
	DefaultViewTTL        = 30 * time.Second
)

// AppointmentViewCache holds the grouped appointment views of a provider.
//
// Entries are keyed by a per-provider generation. Invalidate bumps the
// generation, so a reader that loaded rows before a write can only store its
// result under a generation nobody reads any more. The TTL bounds staleness
// when an invalidation itself is lost.
type AppointmentViewCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAppointmentViewCache(rdb *redis.Client, ttl time.Duration) *AppointmentViewCache {
	if ttl <= 0 {
		ttl = DefaultViewTTL
	}
	return &AppointmentViewCache{rdb: rdb, ttl: ttl}
}

func generationKey(providerID int64) string {
	return appointmentsKeyPrefix + strconv.FormatInt(providerID, 10) + ":gen"
}

func appointmentsKey(providerID, gen int64) string {
	return appointmentsKeyPrefix + strconv.FormatInt(providerID, 10) + ":v" + strconv.FormatInt(gen, 10)
}

// Generation returns the provider's current cache generation. It must be read
// before the store is queried.
func (c *AppointmentViewCache) Generation(ctx context.Context, providerID int64) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey(providerID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("appointment views: generation: %w", err)
	}
	return gen, nil
}

func (c *AppointmentViewCache) Get(ctx context.Context, providerID, gen int64) (map[string]domain.AppointmentView, bool, error) {
	data, err := c.rdb.Get(ctx, appointmentsKey(providerID, gen)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("appointment views: get: %w", err)
	}

	var views map[string]domain.AppointmentView
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, false, fmt.Errorf("appointment views: decode: %w", err)
	}
	if views == nil {
		views = map[string]domain.AppointmentView{}
	}
	return views, true, nil
}

func (c *AppointmentViewCache) Set(ctx context.Context, providerID, gen int64, views map[string]domain.AppointmentView) error {
	data, err := json.Marshal(views)
	if err != nil {
		return fmt.Errorf("appointment views: encode: %w", err)
	}
	if err := c.rdb.Set(ctx, appointmentsKey(providerID, gen), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("appointment views: set: %w", err)
	}
	return nil
}

// Invalidate moves the provider to a new generation and drops the entry of
// the old one.
func (c *AppointmentViewCache) Invalidate(ctx context.Context, providerID int64) error {
	gen, err := c.rdb.Incr(ctx, generationKey(providerID)).Result()
	if err != nil {
		return fmt.Errorf("appointment views: invalidate: %w", err)
	}
	if err := c.rdb.Del(ctx, appointmentsKey(providerID, gen-1)).Err(); err != nil {
		return fmt.Errorf("appointment views: invalidate: %w", err)
	}
	return nil
}
