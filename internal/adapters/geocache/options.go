package geocache

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Option configures a geocode cache
type Option func(*storeConfig)

type storeConfig struct {
	maxEntries  int
	now         func() time.Time
	redisClient *redis.Client
	ttl         time.Duration
}

// WithRedisClient sets the client used by the redis driver
func WithRedisClient(client *redis.Client) Option {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithTTL sets how long lookups stay cached
func WithTTL(ttl time.Duration) Option {
	return func(c *storeConfig) {
		c.ttl = ttl
	}
}

// WithMaxEntries bounds the memory driver
func WithMaxEntries(n int) Option {
	return func(c *storeConfig) {
		c.maxEntries = n
	}
}

// WithNow overrides the memory driver's time source
func WithNow(now func() time.Time) Option {
	return func(c *storeConfig) {
		c.now = now
	}
}
