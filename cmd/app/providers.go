package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/minthura/astrologic/internal/domain/reading"
	"github.com/minthura/astrologic/internal/domain/synthesis"
	"github.com/minthura/astrologic/internal/infra/config"
	"github.com/minthura/astrologic/internal/infra/geo/nominatim"
	"github.com/minthura/astrologic/internal/infra/geostore"
	"github.com/minthura/astrologic/internal/infra/llm/gemini"
	"github.com/minthura/astrologic/internal/infra/llm/openrouter"
	"github.com/minthura/astrologic/internal/infra/readingrepo"
)

func provideSynthesisConfig(cfg *config.Config) synthesis.Config {
	return synthesis.Config{
		GeoCacheTTL: cfg.Geo.CacheTTL,
		RecentLimit: cfg.Readings.RecentLimit,
	}
}

func provideReadingConfig(cfg *config.Config) reading.Config {
	return reading.Config{
		TokenizerEncoding: cfg.LLM.TokenizerEncoding,
	}
}

// provideProviderChain builds the ordered text generation chain: OpenRouter
// first, Gemini as the fallback. A provider with no API key is simply left
// out; an empty chain degrades to synthesis-only responses.
func provideProviderChain(cfg *config.Config, logger *slog.Logger) []reading.ProviderEntry {
	entries := make([]reading.ProviderEntry, 0, 2)

	if strings.TrimSpace(cfg.LLM.OpenRouter.APIKey) != "" {
		client, err := openrouter.NewClient(openrouter.Config{
			APIKey:      cfg.LLM.OpenRouter.APIKey,
			BaseURL:     cfg.LLM.OpenRouter.BaseURL,
			Model:       cfg.LLM.OpenRouter.Model,
			Referer:     cfg.LLM.OpenRouter.Referer,
			AppTitle:    cfg.LLM.OpenRouter.AppTitle,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		})
		if err != nil {
			logger.Error("openrouter client unavailable", "error", err)
		} else {
			entries = append(entries, reading.ProviderEntry{
				Provider: client,
				Policy: reading.RetryPolicy{
					MaxAttempts: cfg.LLM.OpenRouter.MaxAttempts,
					Backoff:     cfg.LLM.OpenRouter.Backoff,
				},
			})
		}
	} else {
		logger.Info("openrouter api key not set, skipping provider")
	}

	if strings.TrimSpace(cfg.LLM.Gemini.APIKey) != "" {
		client, err := gemini.NewClient(gemini.Config{
			APIKey:          cfg.LLM.Gemini.APIKey,
			BaseURL:         cfg.LLM.Gemini.BaseURL,
			Model:           cfg.LLM.Gemini.Model,
			Temperature:     cfg.LLM.Temperature,
			MaxOutputTokens: cfg.LLM.MaxTokens,
		})
		if err != nil {
			logger.Error("gemini client unavailable", "error", err)
		} else {
			entries = append(entries, reading.ProviderEntry{
				Provider: client,
				Policy: reading.RetryPolicy{
					MaxAttempts:          cfg.LLM.Gemini.MaxAttempts,
					Backoff:              cfg.LLM.Gemini.Backoff,
					RateLimitBackoff:     cfg.LLM.Gemini.RateLimitBackoff,
					RetryOnlyRateLimited: true,
				},
			})
		}
	} else {
		logger.Info("gemini api key not set, skipping provider")
	}

	if len(entries) == 0 {
		logger.Warn("no text generation providers configured, readings disabled")
	}
	return entries
}

func provideGeocoder(cfg *config.Config) synthesis.Geocoder {
	return nominatim.NewClient(cfg.Geo.BaseURL, cfg.Geo.UserAgent)
}

func provideGeoStore(cfg *config.Config, logger *slog.Logger) synthesis.GeoStore {
	if cfg.Geo.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return geostore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return geostore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("geo valkey store enabled", "addr", cfg.Geo.Valkey.Addr)
			return geostore.NewValkeyStore(client, "geo")
		}
	}
	return geostore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Geo.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Geo.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Geo.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideReadingRepository(cfg *config.Config, logger *slog.Logger) synthesis.ReadingRepository {
	fallback := readingrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Readings.Postgres.DSN)
	if dsn == "" {
		logger.Info("readings postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Readings.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Readings.Postgres.MaxConns
	}
	if cfg.Readings.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Readings.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("readings postgres repository enabled")
	return readingrepo.NewPostgresRepository(pool)
}
