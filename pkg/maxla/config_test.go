package maxla_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/maxla/pkg/cache"
	"github.com/matzehuels/maxla/pkg/errors"
	"github.com/matzehuels/maxla/pkg/maxla"
	"github.com/matzehuels/maxla/pkg/tree/treegen"
)

func TestParseConfig(t *testing.T) {
	cfg, err := maxla.ParseConfig([]byte(`
[search]
workers = 4
one_thistle_seed = false
log_level = "debug"

[cache]
backend = "memory"
capacity = 64
ttl = "24h"
prefix = "bench:"
redis_attempts = 5
`))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Search.Workers)
	assert.False(t, cfg.Search.OneThistleSeed)
	assert.Equal(t, "debug", cfg.Search.LogLevel)
	assert.Equal(t, maxla.BackendMemory, cfg.Cache.Backend)
	assert.Equal(t, 64, cfg.Cache.Capacity)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL.Duration)
	assert.Equal(t, "bench:", cfg.Cache.Prefix)
	assert.Equal(t, 5, cfg.Cache.RedisAttempts)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := maxla.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, maxla.DefaultConfig(), cfg)
	assert.True(t, cfg.Search.OneThistleSeed)
	assert.Equal(t, maxla.BackendNone, cfg.Cache.Backend)
	assert.Equal(t, cache.TTLResult, cfg.Cache.TTL.Duration)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[search\nworkers = 1"},
		{"unknown key", "[search]\nthreads = 2"},
		{"negative workers", "[search]\nworkers = -1"},
		{"bad log level", "[search]\nlog_level = \"chatty\""},
		{"bad backend", "[cache]\nbackend = \"memcached\""},
		{"file without dir", "[cache]\nbackend = \"file\""},
		{"bad ttl", "[cache]\nttl = \"soon\""},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
		{"zero ttl", "[cache]\nttl = \"0s\""},
		{"negative redis attempts", "[cache]\nredis_attempts = -1"},
		{"negative capacity", "[cache]\ncapacity = -3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := maxla.ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "maxla.toml")
	data := "[cache]\nbackend = \"file\"\ndir = " + `"` + filepath.ToSlash(filepath.Join(dir, "cache")) + `"` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := maxla.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, maxla.BackendFile, cfg.Cache.Backend)

	_, err = maxla.LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestOpenCache(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		cfg  maxla.CacheConfig
		want any
	}{
		{maxla.CacheConfig{}, &cache.NullCache{}},
		{maxla.CacheConfig{Backend: maxla.BackendNone}, &cache.NullCache{}},
		{maxla.CacheConfig{Backend: maxla.BackendMemory, Capacity: 4}, &cache.MemoryCache{}},
		{maxla.CacheConfig{Backend: maxla.BackendFile, Dir: t.TempDir()}, &cache.FileCache{}},
	}
	for _, tt := range tests {
		c, err := tt.cfg.OpenCache(ctx)
		require.NoError(t, err)
		assert.IsType(t, tt.want, c)
		require.NoError(t, c.Close())
	}

	_, err := maxla.CacheConfig{Backend: "tape"}.OpenCache(ctx)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}

func TestNewSolverFromConfig(t *testing.T) {
	cfg := maxla.DefaultConfig()
	cfg.Search.Workers = 2
	cfg.Cache.Backend = maxla.BackendFile
	cfg.Cache.Dir = t.TempDir()

	var buf bytes.Buffer
	s, c, err := maxla.NewSolverFromConfig(context.Background(), cfg, &buf)
	require.NoError(t, err)
	defer c.Close()

	tr := treegen.Caterpillar(2, 2)
	first, err := s.Solve(context.Background(), tr)
	require.NoError(t, err)
	second, err := s.Solve(context.Background(), tr)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Value, second.Value)
	assert.Contains(t, buf.String(), "solved")

	cfg.Search.Workers = -1
	_, _, err = maxla.NewSolverFromConfig(context.Background(), cfg, &buf)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}
