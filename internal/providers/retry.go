package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"nba-recap-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingGameIDProvider wraps a GameIDProvider with retry/backoff behavior.
// ErrNotFound is permanent and returned immediately.
type retryingGameIDProvider struct {
	inner       GameIDProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingGameIDProvider wraps the given provider with retries.
// Non-positive maxAttempts/backoff fall back to defaults.
func NewRetryingGameIDProvider(inner GameIDProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) GameIDProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingGameIDProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (p *retryingGameIDProvider) FindGameID(ctx context.Context, homeTeam, awayTeam, date string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		start := time.Now()
		id, err := p.inner.FindGameID(ctx, homeTeam, awayTeam, date)
		if p.metrics != nil {
			p.metrics.RecordProviderAttempt(p.name, time.Since(start), err)
		}
		if err == nil {
			return id, nil
		}
		if errors.Is(err, ErrNotFound) || ctx.Err() != nil {
			return "", err
		}

		lastErr = err
		if p.logger != nil {
			p.logger.Warn("provider call failed, retrying",
				"provider", p.name,
				"attempt", attempt,
				"error", err,
			)
		}
		if attempt < p.maxAttempts {
			if !sleep(ctx, p.backoffFn(attempt)) {
				return "", ctx.Err()
			}
		}
	}
	return "", lastErr
}

// sleep waits for d or until the context is cancelled, reporting whether the
// full duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
