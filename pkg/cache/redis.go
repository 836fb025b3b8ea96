package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache shares results between processes through a Redis server.
// Transport failures are retried according to its RetryPolicy.
type RedisCache struct {
	rdb   *redis.Client
	retry RetryPolicy
}

// RedisOption configures a RedisCache.
type RedisOption func(*RedisCache)

// WithRetry replaces DefaultRetry.
func WithRetry(p RetryPolicy) RedisOption {
	return func(c *RedisCache) { c.retry = p }
}

// NewRedisCache connects to addr, which is either host:port or a
// redis:// (rediss://) URL, and pings the server. The ping is not retried.
func NewRedisCache(ctx context.Context, addr string, opts ...RedisOption) (*RedisCache, error) {
	opt, err := redisOptions(addr)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrNetwork, opt.Addr, err)
	}
	return newRedisCache(rdb, opts...), nil
}

func newRedisCache(rdb *redis.Client, opts ...RedisOption) *RedisCache {
	c := &RedisCache{rdb: rdb, retry: DefaultRetry}
	for _, o := range opts {
		o(c)
	}
	return c
}

func redisOptions(addr string) (*redis.Options, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return opt, nil
	}
	if addr == "" {
		addr = "localhost:6379"
	}
	return &redis.Options{Addr: addr, DialTimeout: 2 * time.Second}, nil
}

// Get retrieves a value.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	hit := false
	err := c.retry.Do(ctx, func() error {
		b, err := c.rdb.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return nil
		}
		if err != nil {
			return classify(err)
		}
		data, hit = b, true
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return data, hit, nil
}

// Set stores a value. A ttl <= 0 stores without expiry.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	err := c.retry.Do(ctx, func() error {
		return classify(c.rdb.Set(ctx, key, data, ttl).Err())
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes a value.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	err := c.retry.Do(ctx, func() error {
		return classify(c.rdb.Del(ctx, key).Err())
	})
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close closes the client.
func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// classify marks everything but context errors as a network failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

var _ Cache = (*RedisCache)(nil)
