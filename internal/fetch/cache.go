package fetch

import (
	"sync"
	"time"

	"worklog-report/internal/models"
)

// cacheEntry pairs a parse result with the time it was stored.
type cacheEntry struct {
	result    *models.ParseResult
	fetchedAt time.Time
}

// ResultCache holds the last successful parse result per source. Entries
// are written only after a fully successful fetch+parse cycle; expired
// entries are kept so they can be served as a stale fallback when a later
// fetch fails.
type ResultCache struct {
	ttl     time.Duration
	mutex   sync.RWMutex
	entries map[string]*cacheEntry
	now     func() time.Time
}

// NewResultCache creates a cache with the given freshness TTL.
func NewResultCache(ttl time.Duration) *ResultCache {
	return &ResultCache{
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
		now:     time.Now,
	}
}

// GetFresh returns the cached result for source if it is still within the
// TTL, along with the time it was stored.
func (c *ResultCache) GetFresh(source string) (*models.ParseResult, time.Time, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.entries[source]
	if !exists || c.now().Sub(entry.fetchedAt) >= c.ttl {
		return nil, time.Time{}, false
	}
	return entry.result, entry.fetchedAt, true
}

// GetStale returns the cached result for source regardless of age. Used
// only as a fallback after a failed fetch.
func (c *ResultCache) GetStale(source string) (*models.ParseResult, time.Time, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.entries[source]
	if !exists {
		return nil, time.Time{}, false
	}
	return entry.result, entry.fetchedAt, true
}

// Set stores the result for source, replacing any previous entry.
func (c *ResultCache) Set(source string, result *models.ParseResult) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[source] = &cacheEntry{
		result:    result,
		fetchedAt: c.now(),
	}
}
