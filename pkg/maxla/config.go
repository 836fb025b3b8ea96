package maxla

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/maxla/internal/logging"
	"github.com/matzehuels/maxla/pkg/cache"
	"github.com/matzehuels/maxla/pkg/errors"
)

// Cache backends accepted in [cache] backend.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Config is the TOML configuration of a solver.
//
//	[search]
//	workers = 4
//	one_thistle_seed = true
//	log_level = "info"
//
//	[cache]
//	backend = "file"
//	dir = "/var/cache/maxla"
//	ttl = "720h"
//
// The ttl must be positive; leave it out to keep cache.TTLResult.
type Config struct {
	Search SearchConfig `toml:"search"`
	Cache  CacheConfig  `toml:"cache"`
}

// SearchConfig holds the [search] section.
type SearchConfig struct {
	Workers        int    `toml:"workers"`
	OneThistleSeed bool   `toml:"one_thistle_seed"`
	LogLevel       string `toml:"log_level"`
}

// CacheConfig holds the [cache] section.
type CacheConfig struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	Addr     string   `toml:"addr"`
	Capacity int      `toml:"capacity"`
	TTL      Duration `toml:"ttl"`
	// Prefix scopes every key, for backends shared between deployments.
	Prefix string `toml:"prefix"`
	// Attempts per redis operation; 0 keeps cache.DefaultRetry.
	RedisAttempts int `toml:"redis_attempts"`
}

// Duration is a time.Duration written as a Go duration string ("24h").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for toml.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{OneThistleSeed: true, LogLevel: "info"},
		Cache: CacheConfig{
			Backend:  BackendNone,
			Capacity: cache.DefaultMemoryCapacity,
			TTL:      Duration{cache.TTLResult},
		},
	}
}

// LoadConfig reads and validates a TOML file. Keys absent from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// ParseConfig decodes and validates TOML data over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and backend requirements.
func (c Config) Validate() error {
	if err := errors.ValidateWorkers(c.Search.Workers); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Search.LogLevel); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log_level")
	}
	switch c.Cache.Backend {
	case "", BackendNone, BackendMemory, BackendRedis:
	case BackendFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache backend %q needs dir", BackendFile)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.Capacity < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache capacity cannot be negative: %d", c.Cache.Capacity)
	}
	if c.Cache.TTL.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must be positive: %s", c.Cache.TTL)
	}
	if c.Cache.RedisAttempts < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "redis attempts cannot be negative: %d", c.Cache.RedisAttempts)
	}
	return nil
}

// OpenCache builds the configured cache backend. The redis backend pings
// the server, so ctx bounds the connection attempt.
func (c CacheConfig) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case "", BackendNone:
		return cache.NewNullCache(), nil
	case BackendMemory:
		return cache.NewMemoryCache(c.Capacity, c.TTL.Duration), nil
	case BackendFile:
		return cache.NewFileCache(c.Dir)
	case BackendRedis:
		var opts []cache.RedisOption
		if c.RedisAttempts > 0 {
			opts = append(opts, cache.WithRetry(cache.RetryPolicy{
				Attempts: c.RedisAttempts,
				Delay:    cache.DefaultRetry.Delay,
			}))
		}
		rc, err := cache.NewRedisCache(ctx, c.Addr, opts...)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "open redis cache")
		}
		return rc, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Backend)
	}
}

// NewSolverFromConfig builds a solver logging to w. The caller owns the
// returned cache and must Close it.
func NewSolverFromConfig(ctx context.Context, cfg Config, w io.Writer) (*Solver, cache.Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	level, _ := logging.ParseLevel(cfg.Search.LogLevel)
	c, err := cfg.Cache.OpenCache(ctx)
	if err != nil {
		return nil, nil, err
	}
	var keyer cache.Keyer
	if cfg.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, cfg.Cache.Prefix)
	}
	s := NewSolver(Options{
		Workers:    cfg.Search.Workers,
		OneThistle: cfg.Search.OneThistleSeed,
		Logger:     logging.New(w, level),
		Cache:      c,
		Keyer:      keyer,
		CacheTTL:   cfg.Cache.TTL.Duration,
	})
	return s, c, nil
}
