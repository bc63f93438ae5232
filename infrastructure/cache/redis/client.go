// ABOUTME: Redis-backed cache for deployments sharing reader views across instances
// ABOUTME: Misses and expirations surface as ErrCacheMiss so callers treat every backend alike

package redis

import (
	"context"
	"errors"
	"time"

	"localpulse-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is not found or has expired.
var ErrCacheMiss = errors.New("cache: key not found")

// pingTimeout bounds the startup connectivity check.
const pingTimeout = 5 * time.Second

// RedisCache implements interfaces.Cache on a Redis server.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the configured server and verifies it answers
// before handing the cache out. A dead server fails the constructor, which
// lets startup fall back to the in-memory cache.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisCache{client: client}, nil
}

// Get returns the value for key, or ErrCacheMiss when the key is absent.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores value under key for ttl. Redis treats a zero ttl as no expiry,
// matching the interface contract.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes key. Deleting an absent key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
