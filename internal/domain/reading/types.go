package reading

import (
	"context"
	"errors"
	"time"

	"github.com/minthura/astrologic/pkg/metrics"
)

// Prompt is the two-part instruction handed to a provider.
type Prompt struct {
	System string
	User   string
}

// Provider is one text-generation backend. Implementations live under
// internal/infra/llm.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// RetryPolicy tunes how a single provider is retried before the chain moves
// on to the next one.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
	// RateLimitBackoff replaces Backoff when the provider signals throttling;
	// secondary providers on free tiers need the longer pause.
	RateLimitBackoff time.Duration
	// RetryOnlyRateLimited skips retries for hard failures, falling through
	// to the next provider immediately.
	RetryOnlyRateLimited bool
}

// ProviderEntry pairs a provider with its retry policy. The chain is an
// explicit ordered list: the first entry that produces a reading wins.
type ProviderEntry struct {
	Provider Provider
	Policy   RetryPolicy
}

// Config wires runtime settings for the reading domain.
type Config struct {
	TokenizerEncoding string
}

// Result is a generated reading with its provenance.
type Result struct {
	Text     string
	Provider string
	Usage    metrics.TokenUsage
}

// RateLimitError marks a provider failure caused by throttling. The chain
// uses it to pick the rate-limit backoff instead of the normal one.
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string {
	return "provider rate limited: " + e.Err.Error()
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether err carries a throttling signal.
func IsRateLimited(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}
