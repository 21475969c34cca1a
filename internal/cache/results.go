// Package cache holds the in-memory, time-expiring tier of the response
// cache. The persistent detail tier lives in models.Database.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/mvolkov/kinobot/internal/models"
)

// ResultCache caches free-text search result lists keyed by the exact
// query string. Expired entries are misses, never empty results.
type ResultCache struct {
	cache *gocache.Cache
}

// NewResultCache creates a result cache with the given TTL
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		cache: gocache.New(ttl, ttl),
	}
}

// Get returns the cached result list for query, if present and fresh
func (c *ResultCache) Get(query string) ([]models.MediaItem, bool) {
	value, found := c.cache.Get(query)
	if !found {
		return nil, false
	}
	items, ok := value.([]models.MediaItem)
	if !ok {
		return nil, false
	}
	return items, true
}

// Set stores the result list for query. Concurrent writers for the same
// query are tolerated; last writer wins.
func (c *ResultCache) Set(query string, items []models.MediaItem) {
	c.cache.SetDefault(query, items)
}
