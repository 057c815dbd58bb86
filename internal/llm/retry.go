package llm

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/bauwerk-digital/contracts-tracker/internal/common"
)

// retryingGenerator wraps a Generator with a bounded retry policy. Only
// transport-class failures (backend errors, empty responses) are retried;
// malformed output never is, since repeating the same prompt will not fix
// the parse.
type retryingGenerator struct {
	inner    Generator
	attempts int
	backoff  time.Duration
	logger   *slog.Logger
}

// WithRetry decorates g so each Generate call is attempted up to
// 1+maxRetries times with exponential backoff. maxRetries <= 0 returns g
// unchanged.
func WithRetry(g Generator, maxRetries int, backoff time.Duration, logger *slog.Logger) Generator {
	if maxRetries <= 0 {
		return g
	}
	if backoff <= 0 {
		backoff = time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &retryingGenerator{inner: g, attempts: maxRetries + 1, backoff: backoff, logger: logger}
}

func (r *retryingGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	var lastErr error
	delay := r.backoff
	for attempt := 1; attempt <= r.attempts; attempt++ {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable(err) || attempt == r.attempts {
			return "", err
		}
		r.logger.Warn("llm.generate.retry",
			"attempt", attempt,
			"max_attempts", r.attempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return "", lastErr
}

func retryable(err error) bool {
	return errors.Is(err, common.ErrBackend) || errors.Is(err, common.ErrEmptyResponse)
}
