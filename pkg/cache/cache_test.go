package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	maxlaerrors "github.com/matzehuels/maxla/pkg/errors"
)

var errNotFound = errors.New("not found")

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Error("NullCache.Get should always miss")
	}
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	k1 := k.ResultKey("abc", ResultKeyOpts{Version: "v1"})
	if !strings.HasPrefix(k1, "result:") || len(k1) != len("result:")+64 {
		t.Errorf("ResultKey unexpected: %s", k1)
	}
	if k1 != k.ResultKey("abc", ResultKeyOpts{Version: "v1"}) {
		t.Error("ResultKey should be deterministic")
	}
	if k1 == k.ResultKey("abc", ResultKeyOpts{Version: "v2"}) {
		t.Error("Different versions should produce different keys")
	}
	if k1 == k.ResultKey("abc", ResultKeyOpts{Version: "v1", OneThistle: true}) {
		t.Error("Different seed options should produce different keys")
	}
	if k1 == k.ResultKey("abd", ResultKeyOpts{Version: "v1"}) {
		t.Error("Different trees should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "bench:")

	opts := ResultKeyOpts{Version: "dev"}
	got := scoped.ResultKey("abc", opts)
	if got != "bench:"+inner.ResultKey("abc", opts) {
		t.Errorf("ScopedKeyer ResultKey unexpected: %s", got)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	opts := ResultKeyOpts{Version: "dev"}
	if got, want := scoped.ResultKey("h", opts), "prefix:"+NewDefaultKeyer().ResultKey("h", opts); got != want {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}

// roundTrip exercises the contract shared by all storing backends.
func roundTrip(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v1"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v1" {
		t.Fatalf("Get(k) = %q, %v, %v", data, hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v2"), 0); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if data, _, _ = c.Get(ctx, "k"); string(data) != "v2" {
		t.Errorf("overwrite not visible: %q", data)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "k"); hit {
		t.Error("entry survived Delete")
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of a missing key: %v", err)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(0, 0)
	defer c.Close()
	roundTrip(t, c)
}

func TestMemoryCacheCopies(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4, time.Hour)

	in := []byte("abc")
	c.Set(ctx, "k", in, 0)
	in[0] = 'x'
	out, _, _ := c.Get(ctx, "k")
	if string(out) != "abc" {
		t.Fatalf("stored bytes aliased the input: %q", out)
	}
	out[0] = 'y'
	again, _, _ := c.Get(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("returned bytes aliased the entry: %q", again)
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2, 0)
	c.Set(ctx, "a", []byte("1"), 0)
	c.Set(ctx, "b", []byte("2"), 0)
	c.Set(ctx, "c", []byte("3"), 0)

	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}
	if _, hit, _ := c.Get(ctx, "a"); hit {
		t.Error("least recently used entry was not evicted")
	}
}

func TestMemoryCacheEntryTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(4, 0)
	c.Set(ctx, "k", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry returned")
	}
}

func TestFileCache(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()
	roundTrip(t, c)
}

func TestFileCacheExpiredAndCorrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	c.Set(ctx, "old", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry returned")
	}

	fc := c.(*FileCache)
	path := fc.path("bad")
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("{not json"), 0644)
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheNeedsDir(t *testing.T) {
	_, err := NewFileCache("")
	if !maxlaerrors.Is(err, maxlaerrors.ErrCodeInvalidConfig) {
		t.Errorf("NewFileCache(\"\") error = %v", err)
	}
}

func TestRedisOptions(t *testing.T) {
	opt, err := redisOptions("")
	if err != nil || opt.Addr != "localhost:6379" {
		t.Errorf("default addr = %v, %v", opt, err)
	}
	opt, err = redisOptions("redis://cache.internal:6380/2")
	if err != nil || opt.Addr != "cache.internal:6380" || opt.DB != 2 {
		t.Errorf("url options = %+v, %v", opt, err)
	}
	if _, err := redisOptions("redis://host:6379/notadb"); err == nil {
		t.Error("invalid url should fail")
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}
	if errors.Is(classify(context.Canceled), ErrNetwork) {
		t.Error("context errors must not be retried")
	}
	err := classify(errors.New("connection reset"))
	if !errors.Is(err, ErrNetwork) {
		t.Errorf("transport error classified as %v", err)
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("MAXLA_REDIS_ADDR")
	if addr == "" {
		t.Skip("MAXLA_REDIS_ADDR not set")
	}
	c, err := NewRedisCache(context.Background(), addr)
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()
	roundTrip(t, c)
}

func TestRetryPolicy(t *testing.T) {
	ctx := context.Background()
	p := RetryPolicy{Attempts: 3, Delay: time.Millisecond}

	calls := 0
	err := p.Do(ctx, func() error {
		calls++
		return nil
	})
	if err != nil || calls != 1 {
		t.Errorf("success: err %v, calls %d", err, calls)
	}

	calls = 0
	err = p.Do(ctx, func() error {
		calls++
		return errNotFound
	})
	if err != errNotFound || calls != 1 {
		t.Errorf("not a network error: err %v, calls %d", err, calls)
	}

	calls = 0
	err = p.Do(ctx, func() error {
		calls++
		if calls < 2 {
			return classify(errors.New("connection refused"))
		}
		return nil
	})
	if err != nil || calls != 2 {
		t.Errorf("retry once: err %v, calls %d", err, calls)
	}

	calls = 0
	err = p.Do(ctx, func() error {
		calls++
		return ErrNetwork
	})
	if !errors.Is(err, ErrNetwork) || calls != 3 {
		t.Errorf("exhausted: err %v, calls %d", err, calls)
	}

	calls = 0
	_ = RetryPolicy{}.Do(ctx, func() error {
		calls++
		return ErrNetwork
	})
	if calls != 1 {
		t.Errorf("zero policy made %d calls, want 1", calls)
	}
}

func TestRetryPolicyContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := RetryPolicy{Attempts: 5, Delay: time.Hour}.Do(ctx, func() error {
		calls++
		return ErrNetwork
	})
	if err != context.Canceled || calls != 1 {
		t.Errorf("err %v after %d calls, want context.Canceled after 1", err, calls)
	}
}

func TestRedisCacheRetries(t *testing.T) {
	// nothing listens on port 1; the client itself must not retry
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: time.Second})
	attempts := 0
	rdb.AddHook(countHook{&attempts})

	c := newRedisCache(rdb, WithRetry(RetryPolicy{Attempts: 2, Delay: time.Millisecond}))
	defer c.Close()
	if c.retry.Attempts != 2 {
		t.Fatalf("retry policy = %+v", c.retry)
	}
	_, _, err := c.Get(context.Background(), "key")
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("Get error = %v, want ErrNetwork", err)
	}
	if attempts != 2 {
		t.Errorf("Get attempted %d times, want 2", attempts)
	}

	attempts = 0
	c = newRedisCache(rdb)
	if c.retry != DefaultRetry {
		t.Errorf("default policy = %+v", c.retry)
	}
	c.retry = NoRetry
	if err := c.Set(context.Background(), "key", []byte("v"), time.Minute); !errors.Is(err, ErrNetwork) {
		t.Errorf("Set error = %v, want ErrNetwork", err)
	}
	if attempts != 1 {
		t.Errorf("Set attempted %d times, want 1", attempts)
	}
}

// countHook counts the commands sent through a redis client.
type countHook struct{ n *int }

func (h countHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h countHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		*h.n++
		return next(ctx, cmd)
	}
}

func (h countHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}
