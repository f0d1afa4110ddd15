package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// CacheOptions represents options for cache operations
type CacheOptions struct {
	// CacheName prefixes every key as CacheName::key and selects the TTL from the client config
	CacheName string
	// TTL overrides the TTL from the client config when positive
	TTL time.Duration
	// Serializer is the value encoder, JSON by default
	Serializer func(any) ([]byte, error)
	// Deserializer is the value decoder, JSON by default
	Deserializer func([]byte, any) error
}

func NewCacheOptions(cacheName string) *CacheOptions {
	return &CacheOptions{
		CacheName:    cacheName,
		Serializer:   json.Marshal,
		Deserializer: json.Unmarshal,
	}
}

func (co *CacheOptions) WithTTL(ttl time.Duration) *CacheOptions {
	co.TTL = ttl
	return co
}

// Cache stores serialized values under a named key space.
type Cache struct {
	client *Client
	opts   *CacheOptions
}

func NewCache(client *Client, opts *CacheOptions) *Cache {
	if opts == nil {
		opts = NewCacheOptions("")
	}
	if opts.Serializer == nil {
		opts.Serializer = json.Marshal
	}
	if opts.Deserializer == nil {
		opts.Deserializer = json.Unmarshal
	}
	return &Cache{client: client, opts: opts}
}

func (c *Cache) ttl() time.Duration {
	if c.opts.TTL > 0 {
		return c.opts.TTL
	}
	return c.client.config.TTLFor(c.opts.CacheName)
}

// Key returns the full redis key for key.
func (c *Cache) Key(key string) string {
	if c.opts.CacheName != "" {
		return c.opts.CacheName + "::" + key
	}
	return key
}

// Get decodes the cached value into dest. It reports false without error on a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.GetBytes(ctx, c.Key(key))
	if errors.Is(err, ErrNil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := c.opts.Deserializer(data, dest); err != nil {
		return false, fmt.Errorf("failed to deserialize value: %w", err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	data, err := c.opts.Serializer(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value: %w", err)
	}
	return c.client.Set(ctx, c.Key(key), data, c.ttl())
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.Key(key))
}
