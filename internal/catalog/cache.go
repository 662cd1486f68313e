package catalog

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dealdrop/dealdrop/internal/metrics"
	domain "github.com/dealdrop/dealdrop/pkg/types"
)

// CachedClient wraps a Client with a TTL snapshot cache so that a processing
// run with many trackers on the same ASIN costs a single API call. Negative
// results are not cached; a transient lookup failure should not poison the
// rest of the window.
type CachedClient struct {
	inner Client
	cache *gocache.Cache
}

// NewCachedClient wraps inner with a snapshot cache holding entries for ttl.
func NewCachedClient(inner Client, ttl time.Duration) *CachedClient {
	return &CachedClient{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// GetItem returns a cached snapshot when one is fresh, otherwise fetches
// through the wrapped client and caches the result.
func (c *CachedClient) GetItem(
	ctx context.Context,
	asin string,
) (*domain.ProductSnapshot, error) {
	if cached, ok := c.cache.Get(asin); ok {
		metrics.CatalogCacheHitsTotal.Inc()
		snap := cached.(domain.ProductSnapshot)
		return &snap, nil
	}

	snap, err := c.inner.GetItem(ctx, asin)
	if err != nil {
		return nil, err
	}

	// Store by value; callers must never see each other's pointer.
	c.cache.SetDefault(asin, *snap)
	return snap, nil
}

// Flush drops all cached snapshots.
func (c *CachedClient) Flush() {
	c.cache.Flush()
}
