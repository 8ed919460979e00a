package soilgrid

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kisanmitra/cropadvisor/internal/types"
)

// CachedService wraps Service with a per-coordinate TTL cache. Soil
// properties change on geological timescales, so even a long TTL only
// exists to bound memory, not staleness.
type CachedService struct {
	service  *Service
	cacheTTL time.Duration
	mu       sync.RWMutex
	cache    map[string]cacheEntry
}

type cacheEntry struct {
	payload []types.SoilProperty
	at      time.Time
}

// NewCachedService creates a cached soilgrid client.
func NewCachedService(timeout, cacheTTL time.Duration) *CachedService {
	return &CachedService{
		service:  NewService(timeout),
		cacheTTL: cacheTTL,
		cache:    make(map[string]cacheEntry),
	}
}

// Properties returns cached data or fetches fresh data. Coordinates are
// keyed at three decimals (~100m), matching the API's raster resolution.
func (c *CachedService) Properties(ctx context.Context, lat, lon float64) ([]types.SoilProperty, error) {
	key := cacheKey(lat, lon)

	c.mu.RLock()
	entry, ok := c.cache[key]
	c.mu.RUnlock()
	if ok && time.Since(entry.at) < c.cacheTTL {
		return entry.payload, nil
	}

	payload, err := c.service.Properties(ctx, lat, lon)
	if err != nil {
		// Serve a stale entry rather than nothing.
		if ok {
			return entry.payload, nil
		}
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = cacheEntry{payload: payload, at: time.Now()}
	c.mu.Unlock()

	return payload, nil
}

func cacheKey(lat, lon float64) string {
	return fmt.Sprintf("%.3f,%.3f", lat, lon)
}
