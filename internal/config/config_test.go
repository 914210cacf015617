package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "LISTEN_ADDR", "SESSION_SECRET", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT",
	"AI_PROVIDER", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
	"DEEPSEEK_API_KEY", "DEEPSEEK_BASE_URL", "DEEPSEEK_MODEL", "QUOTE_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.False(t, cfg.HumanReadableLogs())
	require.Equal(t, "openai", cfg.AIProvider)
	require.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
	require.Equal(t, "https://api.deepseek.com/v1", cfg.DeepSeekBaseURL)
	require.Empty(t, cfg.OpenAIAPIKey)
	require.Equal(t, 30*time.Second, cfg.QuoteTimeout)
	require.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", " debug ")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("AI_PROVIDER", "DeepSeek")
	t.Setenv("DEEPSEEK_API_KEY", " sk-ds ")
	t.Setenv("QUOTE_TIMEOUT", "5s")

	cfg := Load()
	require.Equal(t, ":9000", cfg.ListenAddr)
	require.Equal(t, "debug", cfg.GinMode)
	require.True(t, cfg.HumanReadableLogs())
	require.Equal(t, "deepseek", cfg.AIProvider)
	require.Equal(t, "sk-ds", cfg.DeepSeekAPIKey)
	require.Equal(t, 5*time.Second, cfg.QuoteTimeout)

	t.Setenv("LISTEN_ADDR", "127.0.0.1:7000")
	require.Equal(t, "127.0.0.1:7000", Load().ListenAddr)
}

func TestLoadIgnoresInvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUOTE_TIMEOUT", "soon")
	require.Equal(t, 30*time.Second, Load().QuoteTimeout)

	t.Setenv("QUOTE_TIMEOUT", "-1s")
	require.Equal(t, 30*time.Second, Load().QuoteTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("OPENAI_API_KEY=sk-file\nPORT=7070\n"), 0o600))
	t.Setenv("PORT", "6060")
	// godotenv only fills unset variables.
	require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))

	require.NoError(t, LoadDotEnv(path))
	cfg := Load()
	require.Equal(t, "sk-file", cfg.OpenAIAPIKey)
	require.Equal(t, "6060", cfg.Port)

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
