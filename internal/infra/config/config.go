package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	LLM      LLMConfig      `yaml:"llm"`
	Geo      GeoConfig      `yaml:"geo"`
	Readings ReadingsConfig `yaml:"readings"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// LLMConfig contains the reading provider chain settings.
type LLMConfig struct {
	Temperature       float32          `yaml:"temperature"`
	MaxTokens         int              `yaml:"maxTokens"`
	TokenizerEncoding string           `yaml:"tokenizerEncoding"`
	OpenRouter        OpenRouterConfig `yaml:"openrouter"`
	Gemini            GeminiConfig     `yaml:"gemini"`
}

// OpenRouterConfig configures the primary provider.
type OpenRouterConfig struct {
	APIKey      string        `yaml:"apiKey"`
	BaseURL     string        `yaml:"baseUrl"`
	Model       string        `yaml:"model"`
	Referer     string        `yaml:"referer"`
	AppTitle    string        `yaml:"appTitle"`
	MaxAttempts int           `yaml:"maxAttempts"`
	Backoff     time.Duration `yaml:"backoff"`
}

// GeminiConfig configures the fallback provider. Gemini free-tier quotas make
// rate-limit errors routine, so only those are retried and with a longer
// backoff.
type GeminiConfig struct {
	APIKey           string        `yaml:"apiKey"`
	BaseURL          string        `yaml:"baseUrl"`
	Model            string        `yaml:"model"`
	MaxAttempts      int           `yaml:"maxAttempts"`
	Backoff          time.Duration `yaml:"backoff"`
	RateLimitBackoff time.Duration `yaml:"rateLimitBackoff"`
}

// GeoConfig controls geocoding and its cache.
type GeoConfig struct {
	BaseURL   string        `yaml:"baseUrl"`
	UserAgent string        `yaml:"userAgent"`
	CacheTTL  time.Duration `yaml:"cacheTtl"`
	Valkey    ValkeyConfig  `yaml:"valkey"`
}

// ValkeyConfig contains connection information for cache storage.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// ReadingsConfig controls the reading archive.
type ReadingsConfig struct {
	RecentLimit int            `yaml:"recentLimit"`
	Postgres    PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_MAX_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxTokens = parsed
		}
	}
	if v := os.Getenv("LLM_TOKENIZER_ENCODING"); v != "" {
		cfg.LLM.TokenizerEncoding = v
	}
	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.LLM.OpenRouter.APIKey = v
	}
	if v := os.Getenv("OPENROUTER_BASE_URL"); v != "" {
		cfg.LLM.OpenRouter.BaseURL = v
	}
	if v := os.Getenv("OPENROUTER_MODEL"); v != "" {
		cfg.LLM.OpenRouter.Model = v
	}
	if v := os.Getenv("OPENROUTER_REFERER"); v != "" {
		cfg.LLM.OpenRouter.Referer = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.LLM.Gemini.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.LLM.Gemini.Model = v
	}
	if v := os.Getenv("GEO_BASE_URL"); v != "" {
		cfg.Geo.BaseURL = v
	}
	if v := os.Getenv("GEO_USER_AGENT"); v != "" {
		cfg.Geo.UserAgent = v
	}
	if v := os.Getenv("GEO_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Geo.CacheTTL = parsed
		}
	}
	if v := os.Getenv("GEO_VALKEY_ENABLED"); v != "" {
		cfg.Geo.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("GEO_VALKEY_ADDR"); v != "" {
		cfg.Geo.Valkey.Addr = v
	}
	if v := os.Getenv("READINGS_RECENT_LIMIT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Readings.RecentLimit = parsed
		}
	}
	if v := os.Getenv("READINGS_POSTGRES_DSN"); v != "" {
		cfg.Readings.Postgres.DSN = v
	}
	if v := os.Getenv("READINGS_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Readings.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("READINGS_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Readings.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 90 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 150 * time.Millisecond,
			},
		},
		LLM: LLMConfig{
			Temperature:       0.7,
			MaxTokens:         2000,
			TokenizerEncoding: "cl100k_base",
			OpenRouter: OpenRouterConfig{
				Model:       "deepseek/deepseek-chat-v3-0324:free",
				Referer:     "https://astrologic.app",
				AppTitle:    "AstroLogic",
				MaxAttempts: 2,
				Backoff:     5 * time.Second,
			},
			Gemini: GeminiConfig{
				Model:            "gemini-2.0-flash",
				MaxAttempts:      3,
				Backoff:          5 * time.Second,
				RateLimitBackoff: 15 * time.Second,
			},
		},
		Geo: GeoConfig{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "astrologic/1.0",
			CacheTTL:  24 * time.Hour,
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
		},
		Readings: ReadingsConfig{
			RecentLimit: 10,
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.LLM.MaxTokens <= 0 {
		return errors.New("llm.maxTokens must be positive")
	}
	if strings.TrimSpace(c.LLM.TokenizerEncoding) == "" {
		return errors.New("llm.tokenizerEncoding cannot be empty")
	}
	if c.LLM.OpenRouter.APIKey != "" {
		if c.LLM.OpenRouter.Model == "" {
			return errors.New("llm.openrouter.model cannot be empty")
		}
		if c.LLM.OpenRouter.MaxAttempts <= 0 {
			return errors.New("llm.openrouter.maxAttempts must be positive")
		}
	}
	if c.LLM.Gemini.APIKey != "" {
		if c.LLM.Gemini.Model == "" {
			return errors.New("llm.gemini.model cannot be empty")
		}
		if c.LLM.Gemini.MaxAttempts <= 0 {
			return errors.New("llm.gemini.maxAttempts must be positive")
		}
	}
	if c.Geo.BaseURL == "" {
		return errors.New("geo.baseUrl cannot be empty")
	}
	if c.Geo.UserAgent == "" {
		return errors.New("geo.userAgent cannot be empty")
	}
	if c.Geo.CacheTTL < 0 {
		return errors.New("geo.cacheTtl cannot be negative")
	}
	if c.Geo.Valkey.Enabled && strings.TrimSpace(c.Geo.Valkey.Addr) == "" {
		return errors.New("geo.valkey.addr cannot be empty when the valkey cache is enabled")
	}
	if c.Readings.RecentLimit <= 0 {
		return errors.New("readings.recentLimit must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}
