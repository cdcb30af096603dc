package reading

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkoukk/tiktoken-go"

	apperrors "github.com/minthura/astrologic/pkg/errors"
	"github.com/minthura/astrologic/pkg/metrics"
)

// Service turns a computed synthesis object into a narrated reading by
// walking an ordered provider chain.
type Service interface {
	Generate(ctx context.Context, synthesis any) (Result, error)
}

type service struct {
	cfg     Config
	entries []ProviderEntry
	logger  *slog.Logger
	sleep   func(time.Duration)
	encoder *tiktoken.Tiktoken
}

// NewService wires the reading domain. Entries are tried in order; each
// provider exhausts its own retry policy before the chain moves on.
func NewService(cfg Config, entries []ProviderEntry, logger *slog.Logger) Service {
	encoding := strings.TrimSpace(cfg.TokenizerEncoding)
	if encoding == "" {
		encoding = "cl100k_base"
	}
	encoder, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		logger.Warn("tokenizer unavailable, prompt token accounting disabled", "encoding", encoding, "error", err)
		encoder = nil
	}
	return &service{
		cfg:     cfg,
		entries: entries,
		logger:  logger.With("component", "reading.service"),
		sleep:   time.Sleep,
		encoder: encoder,
	}
}

func (s *service) Generate(ctx context.Context, synthesis any) (Result, error) {
	if len(s.entries) == 0 {
		return Result{}, apperrors.Wrap("llm_error", "no text generation providers configured", nil)
	}

	payload, err := json.MarshalIndent(synthesis, "", "  ")
	if err != nil {
		return Result{}, apperrors.Wrap("internal", "encode synthesis object", err)
	}
	prompt := buildPrompt(string(payload))
	usage := s.countPrompt(prompt)

	var lastErr error
	for _, entry := range s.entries {
		text, err := s.tryProvider(ctx, entry, prompt)
		if err == nil {
			s.logger.Info("reading generated", "provider", entry.Provider.Name(), "prompt_tokens", usage.PromptTokens)
			return Result{
				Text:     text,
				Provider: entry.Provider.Name(),
				Usage:    s.withCompletion(usage, text),
			}, nil
		}
		lastErr = err
		s.logger.Warn("provider chain advancing", "provider", entry.Provider.Name(), "error", err)
	}

	return Result{}, apperrors.Wrap("llm_error", "all text generation providers failed", lastErr)
}

func (s *service) tryProvider(ctx context.Context, entry ProviderEntry, prompt Prompt) (string, error) {
	attempts := entry.Policy.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		text, err := entry.Provider.Complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", lastErr
		}

		limited := IsRateLimited(err)
		if entry.Policy.RetryOnlyRateLimited && !limited {
			return "", lastErr
		}
		if attempt == attempts {
			break
		}

		delay := entry.Policy.Backoff
		if limited && entry.Policy.RateLimitBackoff > 0 {
			delay = entry.Policy.RateLimitBackoff
		}
		s.logger.Warn("provider attempt failed, retrying", "provider", entry.Provider.Name(), "attempt", attempt, "rate_limited", limited, "error", err)
		if delay > 0 {
			s.sleep(delay)
		}
	}
	return "", lastErr
}

func (s *service) countPrompt(prompt Prompt) metrics.TokenUsage {
	if s.encoder == nil {
		return metrics.TokenUsage{}
	}
	count := len(s.encoder.Encode(prompt.System, nil, nil)) +
		len(s.encoder.Encode(prompt.User, nil, nil))
	return metrics.TokenUsage{PromptTokens: count, TotalTokens: count}
}

func (s *service) withCompletion(usage metrics.TokenUsage, text string) metrics.TokenUsage {
	if s.encoder == nil {
		return usage
	}
	usage.CompletionTokens = len(s.encoder.Encode(text, nil, nil))
	usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	return usage
}
