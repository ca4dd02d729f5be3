// Package redis implements the redirect cache: resolved code → target URL
// mappings with a TTL, invalidated on link update and deletion.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/snaplinkhq/snaplink-backend/internal/observe"
)

const keyPrefix = "link:"

// Cache is a go-redis backed redirect cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a redirect cache against the given redis instance.
func New(addr, password string, db int, ttl time.Duration) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{client: client, ttl: ttl}
}

// Ping verifies connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// GetTarget returns the cached target URL for a code.
func (c *Cache) GetTarget(ctx context.Context, code string) (string, bool) {
	val, err := c.client.Get(ctx, keyPrefix+code).Result()
	if err != nil {
		observe.CacheOperations.WithLabelValues("miss").Inc()
		return "", false
	}
	observe.CacheOperations.WithLabelValues("hit").Inc()
	return val, true
}

// SetTarget caches the target URL for a code. Failures are ignored: the
// cache is an optimization, the store stays authoritative.
func (c *Cache) SetTarget(ctx context.Context, code, targetURL string) {
	c.client.Set(ctx, keyPrefix+code, targetURL, c.ttl)
}

// Invalidate drops the cached entry for a code.
func (c *Cache) Invalidate(ctx context.Context, code string) {
	c.client.Del(ctx, keyPrefix+code)
}
