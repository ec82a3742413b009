package analysis

import (
	"context"
	"time"
)

// Backoff is a bounded exponential backoff policy
type Backoff struct {
	Attempts  int
	BaseDelay time.Duration
}

// DefaultBackoff is the documented provider retry policy: 3 attempts,
// 1s base delay, doubling.
func DefaultBackoff() Backoff {
	return Backoff{Attempts: 3, BaseDelay: time.Second}
}

// Do runs fn up to b.Attempts times, sleeping base*2^(attempt-1)
// between attempts. The sleep is context-aware; cancellation returns
// ctx.Err() immediately.
func (b Backoff) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	delay := b.BaseDelay
	for attempt := 1; attempt <= b.Attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(delay):
				delay *= 2
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
	}
	return lastErr
}
