package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks transport failures talking to a remote backend
// (connection refused, timeouts, resets). Only these are retried.
var ErrNetwork = errors.New("network error")

// RetryPolicy controls how a remote backend repeats an operation that
// failed with ErrNetwork. The delay doubles after every failed attempt.
type RetryPolicy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultRetry is the policy of a RedisCache opened without WithRetry.
// A lookup that keeps failing costs about 300ms before the solver falls
// back to searching.
var DefaultRetry = RetryPolicy{Attempts: 3, Delay: 100 * time.Millisecond}

// NoRetry runs every operation exactly once.
var NoRetry = RetryPolicy{Attempts: 1}

// Do calls fn until it succeeds or returns an error not wrapping
// ErrNetwork, the attempts are used up, or ctx is done. At least one
// attempt is always made.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var err error
	for i := range attempts {
		if err = fn(); err == nil || !errors.Is(err, ErrNetwork) {
			return err
		}
		if i == attempts-1 {
			break
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		delay *= 2
	}
	return err
}
