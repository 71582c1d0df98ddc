package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/ports"
)

// RedisCache shares geocoding results between server instances
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.GeocodeCache = (*RedisCache)(nil)

// NewRedisCache creates a Redis-backed cache
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Connect builds a Redis client from a redis:// URL or a host:port address
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// Get implements ports.GeocodeCache
func (c *RedisCache) Get(ctx context.Context, key string) ([]domain.AddressCandidate, bool, error) {
	val, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read geocode cache: %w", err)
	}

	var candidates []domain.AddressCandidate
	if err := json.Unmarshal(val, &candidates); err != nil {
		return nil, false, fmt.Errorf("failed to decode geocode cache entry: %w", err)
	}
	return candidates, true, nil
}

// Set implements ports.GeocodeCache
func (c *RedisCache) Set(ctx context.Context, key string, candidates []domain.AddressCandidate) error {
	val, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("failed to encode geocode cache entry: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write geocode cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisCache) Close() error {
	return c.client.Close()
}
