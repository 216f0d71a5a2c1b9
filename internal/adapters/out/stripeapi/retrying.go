package stripeapi

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"zapshift/internal/core/ports"
)

// RetryConfig bounds the retry loop of RetryingGateway.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryConfig is tuned for an interactive checkout flow: a few
// quick attempts, never more than a couple of seconds in total.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    1 * time.Second,
	}
}

// RetryingGateway wraps a PaymentGateway and retries transient failures
// with exponential backoff. Business rejections are returned as-is on the
// first attempt.
type RetryingGateway struct {
	next   ports.PaymentGateway
	logger *slog.Logger
	cfg    RetryConfig
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewRetryingGateway decorates next with retry behavior.
func NewRetryingGateway(next ports.PaymentGateway, logger *slog.Logger, cfg RetryConfig) *RetryingGateway {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingGateway{
		next:   next,
		logger: logger,
		cfg:    cfg,
		sleep:  sleepWithContext,
	}
}

// CreateIntent delegates to the wrapped gateway, retrying while the
// failure is transient and attempts remain.
func (g *RetryingGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*ports.PaymentIntent, error) {
	var (
		intent *ports.PaymentIntent
		err    error
	)

	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		intent, err = g.next.CreateIntent(ctx, amount, currency)
		if err == nil {
			return intent, nil
		}
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !errors.Is(err, ErrTransient) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		g.logger.WarnContext(ctx, "payment intent attempt failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)
		if sleepErr := g.sleep(ctx, delay); sleepErr != nil {
			return nil, err
		}
	}

	return nil, err
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
