// Package cache is the read-through cache in front of the hot catalog and
// content queries. Entries are grouped under tags so writes can drop them.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/metrics"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL = 300 * time.Second

	keyPrefix = "cache:"
	tagPrefix = "cache:tag:"
)

type Cache struct {
	rdb    *redis.Client
	sf     singleflight.Group
	logger *zap.Logger
}

// New returns a cache backed by rdb. A nil client disables caching and every
// call goes straight to the fetch function.
func New(rdb *redis.Client, logger ...*zap.Logger) *Cache {
	l := zap.L().Named("cache")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cache")
	}
	return &Cache{rdb: rdb, logger: l}
}

// Key builds the storage key for a query name and its arguments.
func Key(name string, args any) string {
	raw, err := json.Marshal(args)
	if err != nil {
		raw = []byte("{}")
	}
	sum := sha1.Sum(raw)
	return keyPrefix + name + ":" + hex.EncodeToString(sum[:])
}

func TagKey(tag string) string {
	return tagPrefix + tag
}

// Remember returns the cached value for (name, args) when present, otherwise
// runs fetch, stores the result for ttl and registers it under every tag.
func Remember[T any](
	ctx context.Context,
	c *Cache,
	name string,
	args any,
	ttl time.Duration,
	tags []string,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	if c == nil || c.rdb == nil {
		return fetch(ctx)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	key := Key(name, args)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			metrics.CacheHits.Inc()
			return v, nil
		}
		c.logger.Warn("cache entry undecodable, refetching", zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("cache read failed, bypassing", zap.String("key", key), zap.Error(err))
		return fetch(ctx)
	}

	metrics.CacheMisses.Inc()

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		fresh, err := fetch(ctx)
		if err != nil {
			return fresh, err
		}
		c.store(ctx, key, fresh, ttl, tags)
		return fresh, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

func (c *Cache) store(ctx context.Context, key string, value any, ttl time.Duration, tags []string) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
		return
	}
	for _, tag := range tags {
		tk := TagKey(tag)
		if err := c.rdb.SAdd(ctx, tk, key).Err(); err != nil {
			c.logger.Warn("cache tag write failed", zap.String("tag", tag), zap.Error(err))
			continue
		}
		// the set outlives every member it holds
		if err := c.rdb.Expire(ctx, tk, ttl).Err(); err != nil {
			c.logger.Warn("cache tag expire failed", zap.String("tag", tag), zap.Error(err))
		}
	}
}

// Invalidate drops every entry registered under the given tags.
func (c *Cache) Invalidate(ctx context.Context, tags ...string) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	var firstErr error
	for _, tag := range tags {
		tk := TagKey(tag)
		members, err := c.rdb.SMembers(ctx, tk).Result()
		if err != nil {
			c.logger.Error("cache invalidate read tag failed", zap.String("tag", tag), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		keys := append(members, tk)
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			c.logger.Error("cache invalidate delete failed", zap.String("tag", tag), zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		c.logger.Debug("cache tag invalidated", zap.String("tag", tag), zap.Int("keys", len(members)))
	}
	return firstErr
}
