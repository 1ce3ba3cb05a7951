package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// transientMarkers are matched against lower-cased error messages from SDK
// transports that surface infrastructure failures as plain errors rather
// than typed API errors.
var transientMarkers = []string{
	"503",
	"500",
	"unavailable",
	"overloaded",
	"internal error",
	"rpc error",
	"rpc failed",
	"failed to fetch",
	"fetch failed",
	"network",
	"connection refused",
	"connection reset",
	"timeout",
	"deadline exceeded",
}

// RetryProvider is a decorator that retries transient provider failures
// with exponential backoff. The attempt counter is global across the whole
// call: a mix of rate limits and outages still stops at MaxAttempts.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

// WithRetry wraps a Provider with retry logic.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isTransient(err) {
			// Malformed responses and unknown failures surface immediately
			// with their original message.
			return nil, err
		}

		// Last attempt. Transient failures collapse into the single
		// user-facing unavailable error.
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		wait := r.backoff(attempt, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}

	return nil, &ErrServiceUnavailable{Err: lastErr}
}

func (r *RetryProvider) ModelID() string {
	return r.inner.ModelID()
}

// isTransient reports whether the failure is an infrastructure-level error
// that waiting and retrying can plausibly resolve.
func isTransient(err error) bool {
	// Context errors belong to the caller, never retried.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	// Content-level failures are not transient.
	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return false
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return false
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return true
	}

	// Untyped errors: classify by message.
	msg := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// backoff computes the wait duration for the given attempt:
// 1s, 2s, 4s, ... capped at MaxWait.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	// Respect RetryAfter for rate limits.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	if wait > float64(r.config.MaxWait) {
		wait = float64(r.config.MaxWait)
	}

	// Add ±20% jitter.
	jitter := wait * 0.2 * (2*rand.Float64() - 1)
	wait += jitter

	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}
