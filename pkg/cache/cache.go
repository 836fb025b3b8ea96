// Package cache stores solved MaxLA results between runs.
//
// Backends share the [Cache] interface: [NullCache] disables caching,
// [MemoryCache] keeps entries in an in-process LRU, [FileCache] persists
// them under a directory and [RedisCache] shares them between processes.
// Keys are produced by a [Keyer] so that callers never assemble them by hand.
package cache

import (
	"context"
	"time"
)

// TTLResult is the default lifetime of a cached solve result. Results
// never go stale for a fixed build, so the TTL only bounds storage.
const TTLResult = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the data stored under key. The boolean reports a hit;
	// a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// ResultKeyOpts holds the inputs besides the tree that influence a result.
type ResultKeyOpts struct {
	Version    string `json:"version"`
	OneThistle bool   `json:"one_thistle"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ResultKey returns the key of a solve result for the labelled tree
	// with digest treeHash.
	ResultKey(treeHash string, opts ResultKeyOpts) string
}

// DefaultKeyer produces unscoped keys of the form "result:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(treeHash string, opts ResultKeyOpts) string {
	return hashKey("result", treeHash, opts)
}
