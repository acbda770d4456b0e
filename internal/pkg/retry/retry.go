package retry

import (
	"context"
	"time"
)

// Policy is an explicit bounded-retry description: total attempts plus a
// backoff function, independent of who consumes it.
type Policy struct {
	MaxAttempts int
	Base        time.Duration
}

// FromRetries builds a policy out of "N retries after the first attempt".
func FromRetries(retries int, base time.Duration) Policy {
	if retries < 0 {
		retries = 0
	}
	if base <= 0 {
		base = time.Second
	}
	return Policy{MaxAttempts: retries + 1, Base: base}
}

// Delay returns the sleep after the given 1-based failed attempt. Backoff
// grows linearly: base, 2*base, 3*base, ...
func (p Policy) Delay(attempt int) time.Duration {
	return time.Duration(attempt) * p.Base
}

// Do runs fn up to MaxAttempts times, passing the 1-based attempt ordinal,
// sleeping p.Delay between attempts. Returns nil on first success, the last
// error after exhaustion, or ctx.Err() if canceled mid-backoff.
func Do(ctx context.Context, p Policy, fn func(attempt int) error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err = fn(attempt); err == nil {
			return nil
		}
		if attempt == p.MaxAttempts {
			break
		}
		select {
		case <-time.After(p.Delay(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
