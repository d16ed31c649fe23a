package upstream

import (
	"context"
	"errors"
	"time"

	"github.com/mkaraca/careergate/internal/pkg/apperrors"
)

// WithRetry runs op up to attempts times with linear backoff. Retry is
// strictly opt-in: the gateway wires no implicit retries, and only transport
// failures are retried. An upstream HTTP error is a definitive answer and is
// returned as-is.
func WithRetry(ctx context.Context, attempts int, backoff time.Duration, op func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff * time.Duration(attempt)):
			}
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !errors.Is(lastErr, apperrors.ErrUpstreamUnreachable) {
			return lastErr
		}
	}
	return lastErr
}
