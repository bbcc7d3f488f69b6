package backoff

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var MaxRetries uint64 = 11

func RetryGeneral(ctx context.Context, op backoff.Operation) (err error) {
	err = backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(),
			MaxRetries),
		ctx))
	return err
}

// NewRateLimit builds the policy used after the exchange reports a rate
// limit violation: start from the base interval (the violation window is a
// minute, so the base should cover it), double on every consecutive
// violation, and stop after maxRetries. RandomizationFactor is zero to keep
// the waits deterministic.
func NewRateLimit(base time.Duration, maxRetries uint64) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = base
	b.RandomizationFactor = 0
	b.Multiplier = 2
	b.MaxInterval = 10 * base
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, maxRetries)
}
