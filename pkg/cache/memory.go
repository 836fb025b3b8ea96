package cache

import (
	"context"
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemoryCapacity bounds a MemoryCache created with capacity <= 0.
const DefaultMemoryCapacity = 1024

// MemoryCache is an in-process LRU. maxTTL caps every entry's lifetime;
// shorter per-entry TTLs passed to Set are honoured on read.
type MemoryCache struct {
	data *expirable.LRU[string, memoryEntry]
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an LRU holding at most capacity entries. A
// maxTTL <= 0 disables cache-wide expiry.
func NewMemoryCache(capacity int, maxTTL time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryCache{
		data: expirable.NewLRU[string, memoryEntry](capacity, nil, maxTTL),
	}
}

// Get returns a copy of the stored bytes.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, ok := c.data.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.data.Remove(key)
		return nil, false, nil
	}
	return slices.Clone(e.data), true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := memoryEntry{data: slices.Clone(data)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	c.data.Add(key, e)
	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.data.Remove(key)
	return nil
}

// Len reports the number of stored entries, expired ones included until
// they are evicted.
func (c *MemoryCache) Len() int {
	return c.data.Len()
}

// Close drops all entries.
func (c *MemoryCache) Close() error {
	c.data.Purge()
	return nil
}

var _ Cache = (*MemoryCache)(nil)
