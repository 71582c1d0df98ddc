package geocache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/renato0307/freshcart/internal/domain"
	"github.com/renato0307/freshcart/internal/ports"
)

// MemoryCache is a bounded in-process cache. Entries expire after ttl.
type MemoryCache struct {
	entries *lru.Cache
	now     func() time.Time
	ttl     time.Duration
}

var _ ports.GeocodeCache = (*MemoryCache)(nil)

type memoryEntry struct {
	candidates []domain.AddressCandidate
	expiresAt  time.Time
}

// NewMemoryCache creates a cache holding at most maxEntries lookups
func NewMemoryCache(maxEntries int, ttl time.Duration, now func() time.Time) (*MemoryCache, error) {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if now == nil {
		now = time.Now
	}

	entries, err := lru.New(maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &MemoryCache{entries: entries, now: now, ttl: ttl}, nil
}

// Get implements ports.GeocodeCache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]domain.AddressCandidate, bool, error) {
	value, ok := c.entries.Get(key)
	if !ok {
		return nil, false, nil
	}

	entry := value.(memoryEntry)
	if !c.now().Before(entry.expiresAt) {
		c.entries.Remove(key)
		return nil, false, nil
	}
	return cloneCandidates(entry.candidates), true, nil
}

// Set implements ports.GeocodeCache
func (c *MemoryCache) Set(ctx context.Context, key string, candidates []domain.AddressCandidate) error {
	c.entries.Add(key, memoryEntry{
		candidates: cloneCandidates(candidates),
		expiresAt:  c.now().Add(c.ttl),
	})
	return nil
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	return c.entries.Len()
}

func cloneCandidates(in []domain.AddressCandidate) []domain.AddressCandidate {
	out := make([]domain.AddressCandidate, len(in))
	copy(out, in)
	return out
}
