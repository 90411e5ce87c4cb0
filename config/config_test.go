package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

var keys = []string{
	"API_PORT", "LOG_LEVEL", "LLM_PROVIDER", "LLM_ENDPOINT", "LLM_API_KEY", "LLM_MODEL",
	"YOUTUBE_API_KEY", "METADATA_TIMEOUT", "TRANSCRIPT_DELAY", "MOCK_DELAY",
	"PROGRESS_INTERVAL", "PROGRESS_NOTICE", "POSTGRES_HOST", "MINIFLUX_ENDPOINT",
}

// clearEnv unsets every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.LLM.Endpoint)
	assert.Equal(t, "google/gemma-3-27b-it:free", cfg.LLM.Model)
	assert.Equal(t, 3*time.Second, cfg.LLM.MockDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Youtube.TranscriptDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.Progress.Interval)
	assert.Equal(t, 5*time.Second, cfg.Progress.NoticeDelay)
	assert.Equal(t, ProviderMock, cfg.Provider())
	assert.False(t, cfg.JournalEnabled())
	assert.False(t, cfg.InboxEnabled())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_PORT=9090\nMOCK_DELAY=1s\n"), 0o600))
	t.Setenv("MOCK_DELAY", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.Equal(t, 2*time.Second, cfg.LLM.MockDelay)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

func TestProvider(t *testing.T) {
	for _, tc := range []struct {
		name   string
		llm    LLM
		exp    string
		expErr bool
	}{
		{name: "auto without key", llm: LLM{}, exp: ProviderMock},
		{name: "auto with key", llm: LLM{ApiKey: "key"}, exp: ProviderOpenAI},
		{name: "explicit mock with key", llm: LLM{Provider: ProviderMock, ApiKey: "key"}, exp: ProviderMock},
		{name: "openai with key", llm: LLM{Provider: ProviderOpenAI, ApiKey: "key"}, exp: ProviderOpenAI},
		{name: "openai without key", llm: LLM{Provider: ProviderOpenAI}, expErr: true},
		{name: "unknown", llm: LLM{Provider: "gemini"}, expErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LLM = tc.llm
			err := cfg.Validate()
			if tc.expErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, cfg.Provider())
		})
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		change func(c *Config)
	}{
		{name: "zero interval", change: func(c *Config) { c.Progress.Interval = 0 }},
		{name: "negative notice", change: func(c *Config) { c.Progress.NoticeDelay = -time.Second }},
		{name: "negative mock delay", change: func(c *Config) { c.LLM.MockDelay = -time.Second }},
		{name: "log level", change: func(c *Config) { c.LogLevel = "loud" }},
		{name: "port", change: func(c *Config) { c.APIPort = 0 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.change(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("zero delays are allowed", func(t *testing.T) {
		cfg := validConfig()
		cfg.LLM.MockDelay = 0
		cfg.Youtube.TranscriptDelay = 0
		assert.NoError(t, cfg.Validate())
	})
}

func validConfig() *Config {
	return &Config{
		APIPort:  8080,
		LogLevel: "debug",
		LLM:      LLM{MockDelay: time.Second},
		Youtube:  Youtube{MetadataTimeout: time.Second, TranscriptDelay: time.Second},
		Progress: Progress{Interval: time.Second, NoticeDelay: time.Second},
	}
}
