package llm

import (
	"context"
	"errors"
	"time"
)

// jitterSpread bounds the symmetric random offset added to every backoff delay.
const jitterSpread = 100 * time.Millisecond

// Class tells the retry loop what to do with a failed attempt.
type Class int

const (
	ClassRetryable Class = iota
	ClassFatal
)

func (c Class) String() string {
	if c == ClassFatal {
		return "fatal"
	}
	return "retryable"
}

// Classify decides whether err is worth another attempt.
// Validation failures, client-class API errors (status < 500) and caller
// cancellation are fatal. Transport failures, per-attempt timeouts and 5xx
// answers are retryable.
func Classify(err error) Class {
	if errors.Is(err, context.Canceled) {
		return ClassFatal
	}
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return ClassFatal
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
		return ClassFatal
	}
	return ClassRetryable
}

// Backoff returns the delay before the retry that follows attempt (0-based):
// min(initial*2^attempt, max) shifted by a jitter in [-100ms, +100ms].
// random must return values in [0, 1). The result is never negative.
func Backoff(attempt int, initialDelay, maxDelay time.Duration, random func() float64) time.Duration {
	d := maxDelay
	if attempt < 32 {
		if exp := initialDelay << uint(attempt); exp > 0 && exp < maxDelay {
			d = exp
		}
	}

	d += time.Duration((random()*2 - 1) * float64(jitterSpread))
	if d < 0 {
		return 0
	}
	return d
}

// Sleeper waits between attempts. Implementations must return early with
// ctx.Err() when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }

type timerSleeper struct{}

func (timerSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
