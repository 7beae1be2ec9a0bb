package memory

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"solana-buy-tracker/internal/domain"
)

// DefaultLastBuyCacheSize bounds the number of tokens remembered.
const DefaultLastBuyCacheSize = 1024

// LastBuyCache is a bounded, concurrency-safe map from token to its most
// recent discovered buy. Least recently used tokens are evicted first.
type LastBuyCache struct {
	lru *lru.Cache[string, domain.DiscoveredBuy]
}

// NewLastBuyCache creates a cache holding at most size tokens.
// A size below 1 uses DefaultLastBuyCacheSize.
func NewLastBuyCache(size int) *LastBuyCache {
	if size < 1 {
		size = DefaultLastBuyCacheSize
	}
	// lru.New only fails for a non-positive size.
	c, _ := lru.New[string, domain.DiscoveredBuy](size)
	return &LastBuyCache{lru: c}
}

// Get returns a copy of the cached buy for token.
func (c *LastBuyCache) Get(token string) (*domain.DiscoveredBuy, bool) {
	buy, ok := c.lru.Get(token)
	if !ok {
		return nil, false
	}
	return buy.Clone(), true
}

// Put stores a copy of buy, replacing any previous value for token.
func (c *LastBuyCache) Put(token string, buy *domain.DiscoveredBuy) {
	if buy == nil {
		return
	}
	c.lru.Add(token, *buy.Clone())
}

// Len returns the number of cached tokens.
func (c *LastBuyCache) Len() int {
	return c.lru.Len()
}
