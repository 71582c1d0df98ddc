package services

import (
	"context"
	"fmt"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/logging"
	"github.com/renato0307/freshcart/internal/ports"
)

// CachedGeocoder caches reverse lookups of a GeocodeService
type CachedGeocoder struct {
	cache ports.GeocodeCache
	next  ports.GeocodeService
}

var _ ports.GeocodeService = (*CachedGeocoder)(nil)

// NewCachedGeocoder wraps next with cache
func NewCachedGeocoder(next ports.GeocodeService, cache ports.GeocodeCache) *CachedGeocoder {
	return &CachedGeocoder{
		cache: cache,
		next:  next,
	}
}

// GeocodeCacheKey rounds coordinates to four decimals (about 11 m)
func GeocodeCacheKey(coords domain.Coordinates) string {
	return fmt.Sprintf("reverse:%.4f:%.4f", coords.Latitude, coords.Longitude)
}

// Forward is not cached
func (g *CachedGeocoder) Forward(ctx context.Context, query string) ([]domain.Coordinates, error) {
	return g.next.Forward(ctx, query)
}

// Reverse serves from the cache when possible. Cache failures fall through to the geocoder.
func (g *CachedGeocoder) Reverse(ctx context.Context, coords domain.Coordinates) ([]domain.AddressCandidate, error) {
	key := GeocodeCacheKey(coords)

	cached, found, err := g.cache.Get(ctx, key)
	if err != nil {
		logging.Logger.Warn("Geocode cache read failed", "key", key, "error", err)
	} else if found {
		logging.Logger.Debug("Geocode cache hit", "key", key)
		return cached, nil
	}

	candidates, err := g.next.Reverse(ctx, coords)
	if err != nil {
		return nil, err
	}

	if len(candidates) > 0 {
		if err := g.cache.Set(ctx, key, candidates); err != nil {
			logging.Logger.Warn("Geocode cache write failed", "key", key, "error", err)
		}
	}
	return candidates, nil
}
