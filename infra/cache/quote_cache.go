// Package cache provides a small in-memory TTL cache for price quotes.
package cache

import (
	"sync"
	"time"

	"github.com/robj/ethsend/pkg/domain"
)

type entry struct {
	quote     domain.PriceQuote
	expiresAt time.Time
}

// QuoteCache stores the latest multi-currency quote per asset with a TTL.
// Entries expire lazily on read; a quote is replaced wholesale on Set,
// never merged.
type QuoteCache struct {
	entries map[string]entry
	mu      sync.RWMutex
}

// NewQuoteCache creates an empty cache.
func NewQuoteCache() *QuoteCache {
	return &QuoteCache{entries: make(map[string]entry)}
}

// Get returns the cached quote for an asset, if present and not expired.
func (c *QuoteCache) Get(assetID string) (domain.PriceQuote, bool) {
	c.mu.RLock()
	e, ok := c.entries[assetID]
	c.mu.RUnlock()
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.quote, true
}

// Set stores a quote for an asset. A non-positive ttl disables caching
// for the entry.
func (c *QuoteCache) Set(assetID string, quote domain.PriceQuote, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[assetID] = entry{quote: quote, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
}

// Delete removes the cached quote for an asset.
func (c *QuoteCache) Delete(assetID string) {
	c.mu.Lock()
	delete(c.entries, assetID)
	c.mu.Unlock()
}
