package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// UnavailableMessage is the single user-facing message shown when the
// provider keeps failing transiently until the retry budget runs out.
const UnavailableMessage = "the AI service is currently unavailable — please try again in a few moments"

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema. Retrying the same prompt rarely fixes
// a shape mismatch, so the retry decorator never retries it.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// ErrServiceUnavailable is the terminal error raised after every retry of
// a transient failure has been spent. It carries the fixed user-facing
// message; the last underlying error stays reachable through Unwrap.
type ErrServiceUnavailable struct {
	Err error
}

func (e *ErrServiceUnavailable) Error() string { return UnavailableMessage }

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }
