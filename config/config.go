// Package config reads the service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

const (
	ProviderAuto   = ""
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
)

type Config struct {
	APIPort  int    `env:"API_PORT" env-default:"8080"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	LLM      LLM
	Youtube  Youtube
	Progress Progress
	Postgres Postgres
	Miniflux Miniflux
}

type LLM struct {
	Provider  string        `env:"LLM_PROVIDER"`
	Endpoint  string        `env:"LLM_ENDPOINT" env-default:"https://openrouter.ai/api/v1"`
	ApiKey    string        `env:"LLM_API_KEY"`
	Model     string        `env:"LLM_MODEL" env-default:"google/gemma-3-27b-it:free"`
	MockDelay time.Duration `env:"MOCK_DELAY" env-default:"3s"`
}

type Youtube struct {
	ApiKey          string        `env:"YOUTUBE_API_KEY"`
	MetadataTimeout time.Duration `env:"METADATA_TIMEOUT" env-default:"10s"`
	TranscriptDelay time.Duration `env:"TRANSCRIPT_DELAY" env-default:"1.5s"`
}

type Progress struct {
	Interval    time.Duration `env:"PROGRESS_INTERVAL" env-default:"300ms"`
	NoticeDelay time.Duration `env:"PROGRESS_NOTICE" env-default:"5s"`
}

type Postgres struct {
	Host     string `env:"POSTGRES_HOST"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	User     string `env:"POSTGRES_USER" env-default:"videonotes"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"videonotes"`
	Database string `env:"POSTGRES_DB" env-default:"videonotes"`
}

type Miniflux struct {
	Endpoint string `env:"MINIFLUX_ENDPOINT"`
	ApiKey   string `env:"MINIFLUX_APIKEY"`
}

// Load reads the environment. Variables from envFile are added first when
// the file exists; they never override variables that are already set.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("cannot load env file: %w", err)
			}
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.LLM.Provider {
	case ProviderAuto, ProviderMock:
	case ProviderOpenAI:
		if c.LLM.ApiKey == "" {
			errs = append(errs, errors.New("LLM_PROVIDER openai needs LLM_API_KEY"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.APIPort <= 0 || c.APIPort > 65535 {
		errs = append(errs, fmt.Errorf("invalid API_PORT %d", c.APIPort))
	}
	for name, d := range map[string]time.Duration{
		"METADATA_TIMEOUT":  c.Youtube.MetadataTimeout,
		"PROGRESS_INTERVAL": c.Progress.Interval,
		"PROGRESS_NOTICE":   c.Progress.NoticeDelay,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", name))
		}
	}
	for name, d := range map[string]time.Duration{
		"MOCK_DELAY":       c.LLM.MockDelay,
		"TRANSCRIPT_DELAY": c.Youtube.TranscriptDelay,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}

	return errors.Join(errs...)
}

// Provider resolves the generator to use. Without an explicit choice the
// OpenAI provider is used only when a key is configured.
func (c *Config) Provider() string {
	if c.LLM.Provider != ProviderAuto {
		return c.LLM.Provider
	}
	if c.LLM.ApiKey != "" {
		return ProviderOpenAI
	}
	return ProviderMock
}

func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) JournalEnabled() bool {
	return c.Postgres.Host != ""
}

func (c *Config) InboxEnabled() bool {
	return c.Miniflux.Endpoint != ""
}
