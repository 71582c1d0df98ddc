package geocache

import (
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/freshcart/internal/ports"
)

// StoreType selects the cache driver
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeNone   StoreType = "none"
	StoreTypeRedis  StoreType = "redis"
)

const (
	defaultMaxEntries = 4096
	defaultTTL        = 24 * time.Hour
	keyPrefix         = "freshcart:geocode:"
)

var (
	ErrInvalidConfig    = errors.New("invalid geocode cache configuration")
	ErrInvalidStoreType = errors.New("invalid geocode cache type")
)

// New creates a geocode cache of the given type.
// StoreTypeNone returns nil: callers use the geocoder uncached.
func New(storeType StoreType, opts ...Option) (ports.GeocodeCache, error) {
	config := &storeConfig{
		maxEntries: defaultMaxEntries,
		ttl:        defaultTTL,
	}
	for _, opt := range opts {
		opt(config)
	}
	if config.ttl <= 0 {
		config.ttl = defaultTTL
	}

	switch storeType {
	case StoreTypeNone:
		return nil, nil

	case StoreTypeMemory, "":
		cache, err := NewMemoryCache(config.maxEntries, config.ttl, config.now)
		if err != nil {
			return nil, err
		}
		return cache, nil

	case StoreTypeRedis:
		if config.redisClient == nil {
			return nil, fmt.Errorf("%w: redis client required", ErrInvalidConfig)
		}
		return NewRedisCache(config.redisClient, config.ttl), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidStoreType, storeType)
	}
}
