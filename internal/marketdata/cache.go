package marketdata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// DefaultCacheTTL is how long market data stays cached unless configured otherwise.
const DefaultCacheTTL = 5 * time.Minute

// CachedProvider memoizes successful responses of another provider.
type CachedProvider struct {
	next  Provider
	cache *cache.Cache
}

// NewCachedProvider wraps next with an in-memory cache whose entries expire after ttl.
func NewCachedProvider(next Provider, ttl time.Duration) *CachedProvider {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedProvider{next: next, cache: cache.New(ttl, 2*ttl)}
}

// Name returns the wrapped provider's name.
func (c *CachedProvider) Name() string { return c.next.Name() }

func (c *CachedProvider) Quote(ctx context.Context, symbol string) (*Quote, error) {
	return cached(c, "quote:"+strings.ToUpper(symbol), func() (*Quote, error) {
		return c.next.Quote(ctx, symbol)
	})
}

func (c *CachedProvider) History(ctx context.Context, symbol string, days int) ([]Candle, error) {
	key := fmt.Sprintf("history:%s:%d", strings.ToUpper(symbol), days)
	return cached(c, key, func() ([]Candle, error) {
		return c.next.History(ctx, symbol, days)
	})
}

func (c *CachedProvider) Search(ctx context.Context, query string) ([]SearchResult, error) {
	return cached(c, "search:"+strings.ToLower(query), func() ([]SearchResult, error) {
		return c.next.Search(ctx, query)
	})
}

func (c *CachedProvider) Profile(ctx context.Context, symbol string) (*Profile, error) {
	return cached(c, "profile:"+strings.ToUpper(symbol), func() (*Profile, error) {
		return c.next.Profile(ctx, symbol)
	})
}

// Flush drops every cached entry.
func (c *CachedProvider) Flush() {
	c.cache.Flush()
}

// cached returns the cached value for key or loads and stores it. Errors are not cached.
func cached[T any](c *CachedProvider, key string, load func() (T, error)) (T, error) {
	if v, ok := c.cache.Get(key); ok {
		return v.(T), nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.cache.SetDefault(key, v)
	return v, nil
}
