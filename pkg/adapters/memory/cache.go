// Package memory provides in-process implementations of the ports interfaces.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/aretw0/jsquery/pkg/ports"
	lru "github.com/hashicorp/golang-lru"
)

// DefaultMaxEntries bounds a Cache created without WithMaxEntries.
const DefaultMaxEntries = 10000

type entry struct {
	code    string
	expires time.Time
}

// Cache implements ports.RenderCache in memory. It holds at most a fixed
// number of entries, evicting the least recently used one, and entries
// expire after an optional ttl.
// Safe for concurrent use.
type Cache struct {
	mu  sync.Mutex
	lru *lru.Cache
	ttl time.Duration
	now func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*cacheOptions)

type cacheOptions struct {
	ttl        time.Duration
	maxEntries int
}

// WithTTL expires entries ttl after they were set. Zero keeps them.
func WithTTL(ttl time.Duration) CacheOption {
	return func(o *cacheOptions) { o.ttl = ttl }
}

// WithMaxEntries bounds the number of entries. Values below one keep DefaultMaxEntries.
func WithMaxEntries(n int) CacheOption {
	return func(o *cacheOptions) {
		if n > 0 {
			o.maxEntries = n
		}
	}
}

// NewCache creates an empty in-memory cache.
func NewCache(opts ...CacheOption) *Cache {
	o := cacheOptions{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(&o)
	}
	// lru.New only fails for a size below one.
	l, _ := lru.New(o.maxEntries)
	return &Cache{lru: l, ttl: o.ttl, now: time.Now}
}

// Get returns the code cached for key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.lru.Get(key)
	if !ok {
		return "", ports.ErrNotFound
	}
	e := v.(entry)
	if !e.expires.IsZero() && !c.now().Before(e.expires) {
		c.lru.Remove(key)
		return "", ports.ErrNotFound
	}
	return e.code, nil
}

// Set caches code for key, evicting the least recently used entry when full.
func (c *Cache) Set(ctx context.Context, key, code string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{code: code}
	if c.ttl > 0 {
		e.expires = c.now().Add(c.ttl)
	}
	c.lru.Add(key, e)
	return nil
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Remove(key)
	return nil
}

// Len returns the number of cached entries. Expired entries count until they
// are read or evicted.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
