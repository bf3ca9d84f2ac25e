// Package httpclient builds the outbound HTTP client shared by every tool.
package httpclient

import (
	"net/http"
	"time"

	"github.com/alexshin/httpcache"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheSize = 1000
	DefaultCacheTTL  = 60 * time.Minute
)

// Options configures the outbound client.
type Options struct {
	// CacheEnabled wraps the transport in an in-memory response cache.
	CacheEnabled bool
	CacheSize    int
	CacheTTL     time.Duration
}

// LRUTTLCache implements httpcache.Cache using hashicorp's LRU with TTL
type LRUTTLCache struct {
	entries *expirable.LRU[string, []byte]
}

// NewLRUTTLCache creates an LRU cache whose entries expire after ttl.
func NewLRUTTLCache(size int, ttl time.Duration) *LRUTTLCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &LRUTTLCache{
		entries: expirable.NewLRU[string, []byte](size, nil, ttl),
	}
}

func (c *LRUTTLCache) Get(key string) ([]byte, bool) {
	return c.entries.Get(key)
}

func (c *LRUTTLCache) Set(key string, data []byte) {
	c.entries.Add(key, data)
}

func (c *LRUTTLCache) Delete(key string) {
	c.entries.Remove(key)
}

// Len returns the number of live entries.
func (c *LRUTTLCache) Len() int {
	return c.entries.Len()
}

// NewTransport returns the pooled base transport used for upstream calls.
func NewTransport() *http.Transport {
	return &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}
}

// NewWithCache builds the upstream client and returns its response cache, nil when caching
// is disabled. Per-request deadlines come from the caller's context, so the client itself
// has no timeout.
func NewWithCache(opts Options) (*http.Client, *LRUTTLCache) {
	base := NewTransport()
	if !opts.CacheEnabled {
		return &http.Client{Transport: base}, nil
	}

	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	cache := NewLRUTTLCache(opts.CacheSize, ttl)

	// Cache every GET by URL regardless of upstream cache headers.
	cached := httpcache.NewConfigurableTransport(cache, &httpcache.CacheConfig{
		CacheKeyFn: func(req *http.Request) string {
			return req.URL.String()
		},
		AuthorizeCacheFn: func(_ *http.Request, _ *http.Client) bool {
			return true
		},
	})
	cached.Transport = base

	return &http.Client{Transport: cached}, cache
}
