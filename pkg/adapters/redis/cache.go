// Package redis implements the ports interfaces on Redis so that replicas of
// the render service share results.
package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/jsquery/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix starts every key written by this package.
const DefaultPrefix = "jsquery:render:"

// Cache implements ports.RenderCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration of cached renders. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// New creates a Redis cache connected to address.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromURL creates a Redis cache from a redis:// URL.
func NewFromURL(url string, opts ...Option) (*Cache, error) {
	o, err := backend.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewFromClient(backend.NewClient(o), opts...), nil
}

// NewFromClient creates a Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Client returns the underlying client, e.g. to share it with a Locker.
func (c *Cache) Client() *backend.Client { return c.client }

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get returns the code cached for key.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, c.key(key)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", ports.ErrNotFound
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, nil
}

// Set caches code for key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key, code string) error {
	if err := c.client.Set(ctx, c.key(key), code, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Delete removes key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.key(key)).Err()
}

// Purge deletes every key under the prefix and returns how many were removed.
// Lock keys of a Locker sharing the prefix are left alone.
// Run it after changing the catalog, since fingerprints do not cover it.
func (c *Cache) Purge(ctx context.Context) (int, error) {
	locks := c.prefix + lockInfix
	var (
		cursor  uint64
		removed int
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", 100).Result()
		if err != nil {
			return removed, fmt.Errorf("failed to scan redis: %w", err)
		}
		keys = slices.DeleteFunc(keys, func(k string) bool { return strings.HasPrefix(k, locks) })
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return removed, fmt.Errorf("failed to delete from redis: %w", err)
			}
			removed += int(n)
		}
		if next == 0 {
			return removed, nil
		}
		cursor = next
	}
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
