package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/courtside-sim/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// RetryingPublisher retries failed publishes with linear backoff.
type RetryingPublisher struct {
	inner       Publisher
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingPublisher wraps inner. Non-positive attempts or backoff use the defaults.
func NewRetryingPublisher(inner Publisher, logger *slog.Logger, maxAttempts int, backoff time.Duration) *RetryingPublisher {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &RetryingPublisher{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *RetryingPublisher) Publish(ctx context.Context, ev GameFinal) error {
	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err := r.inner.Publish(ctx, ev)
		if err == nil {
			return nil
		}
		lastErr = err
		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(logging.FromContext(ctx, r.logger), "publish retry",
			logging.FieldGameID, ev.GameID, "attempt", attempt, "max_attempts", r.maxAttempts, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}
	return lastErr
}

func (r *RetryingPublisher) Close() {
	r.inner.Close()
}
