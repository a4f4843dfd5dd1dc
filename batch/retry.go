package batch

import (
	"context"
	"time"
)

// AcquireFunc retrieves the markup for a source.
type AcquireFunc func(ctx context.Context, source string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// AcquireWithRetry calls acquire until it succeeds, sleeping delays[i]
// before retry i+1. An empty delays slice means a single attempt.
// The error of the last attempt is returned when all attempts fail.
func AcquireWithRetry(ctx context.Context, source string, acquire AcquireFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		markup, err := acquire(ctx, source)
		if err == nil {
			return markup, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
