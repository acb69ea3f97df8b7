package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache implements ports.Cache on a Redis client, namespacing every
// key under an optional prefix.
type RedisCache struct {
	r      redis.Cmdable
	prefix string
}

func NewRedisCache(r redis.Cmdable, prefix string) *RedisCache {
	return &RedisCache{r: r, prefix: prefix}
}

func (c *RedisCache) namespaced(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// Get returns the raw bytes for key; ok=false on a miss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.r.Get(ctx, c.namespaced(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores value under key; the TTL is always written alongside so an
// entry can only outlive its freshness window by a cache-wide flush.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.r.Set(ctx, c.namespaced(key), value, ttl).Err()
}

// Delete removes the key; absence is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.r.Del(ctx, c.namespaced(key)).Err()
}

// DeleteByPrefix walks matching keys with SCAN and removes them,
// returning how many were deleted.
func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) (int, error) {
	pattern := c.namespaced(prefix) + "*"
	deleted := 0
	var cursor uint64
	for {
		keys, next, err := c.r.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := c.r.Del(ctx, keys...).Result()
			deleted += int(n)
			if err != nil {
				return deleted, err
			}
		}
		cursor = next
		if cursor == 0 {
			return deleted, nil
		}
	}
}
