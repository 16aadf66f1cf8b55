package payment

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// RetryGateway is a proxy that retries transient failures of the wrapped gateway.
type RetryGateway struct {
	next     Gateway
	attempts int
	backoff  time.Duration
}

// NewRetryGateway retries up to attempts times in total, waiting backoff,
// then twice that, between tries.
func NewRetryGateway(next Gateway, attempts int, backoff time.Duration) *RetryGateway {
	if attempts < 1 {
		attempts = 1
	}
	return &RetryGateway{next: next, attempts: attempts, backoff: backoff}
}

func (r *RetryGateway) Charge(ctx context.Context, c Charge) (Receipt, error) {
	wait := r.backoff
	var lastErr error
	for attempt := 1; attempt <= r.attempts; attempt++ {
		receipt, err := r.next.Charge(ctx, c)
		if err == nil {
			return receipt, nil
		}
		lastErr = err
		if !errors.Is(err, ErrTransient) || attempt == r.attempts {
			break
		}

		if wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return Receipt{}, ctx.Err()
			case <-timer.C:
			}
			wait *= 2
		}
	}
	return Receipt{}, fmt.Errorf("charge order %s: %w", c.OrderID, lastErr)
}
