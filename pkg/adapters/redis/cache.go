package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/bwtnet/pkg/domain"
	"github.com/aretw0/bwtnet/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Cache implements ports.TransformCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.TransformCache = (*Cache)(nil)

type Option func(*Cache)

// WithTTL sets the expiration for cached transforms.
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

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "bwtnet:transform:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// key hashes the body so that long sequences do not produce long keys.
func (c *Cache) key(dir domain.Direction, body string) string {
	sum := sha256.Sum256([]byte(body))
	return c.prefix + string(dir.Marker()) + ":" + hex.EncodeToString(sum[:])
}

// Get retrieves a transform from Redis.
func (c *Cache) Get(ctx context.Context, dir domain.Direction, body string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(dir, body)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get from redis: %w", err)
	}
	return val, true, nil
}

// Put stores a transform in Redis.
func (c *Cache) Put(ctx context.Context, dir domain.Direction, body, out string) error {
	if err := c.client.Set(ctx, c.key(dir, body), out, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
