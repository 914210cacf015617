package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultQuoteTimeout    = 30 * time.Second
	defaultOpenAIBaseURL   = "https://api.openai.com/v1"
	defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string
	Port          string
	SessionSecret string
	GinMode       string
	LogLevel      string
	LogFormat     string

	AIProvider      string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string
	QuoteTimeout    time.Duration
}

// HumanReadableLogs reports whether logs should use the console writer instead of JSON.
func (c AppConfig) HumanReadableLogs() bool {
	return c.LogFormat == "console" || c.LogFormat == "text"
}

// LoadDotEnv 读取 .env 文件到环境变量，文件不存在时忽略，已有的环境变量不会被覆盖。
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := envOr("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	quoteTimeout := defaultQuoteTimeout
	if raw := strings.TrimSpace(os.Getenv("QUOTE_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil && parsed > 0 {
			quoteTimeout = parsed
		}
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		SessionSecret:   envOr("SESSION_SECRET", "readmeforge-dev-secret"),
		GinMode:         envOr("GIN_MODE", "release"),
		LogLevel:        strings.ToLower(envOr("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(envOr("LOG_FORMAT", "json")),
		AIProvider:      strings.ToLower(envOr("AI_PROVIDER", "openai")),
		OpenAIAPIKey:    strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:   envOr("OPENAI_BASE_URL", defaultOpenAIBaseURL),
		OpenAIModel:     strings.TrimSpace(os.Getenv("OPENAI_MODEL")),
		DeepSeekAPIKey:  strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY")),
		DeepSeekBaseURL: envOr("DEEPSEEK_BASE_URL", defaultDeepSeekBaseURL),
		DeepSeekModel:   strings.TrimSpace(os.Getenv("DEEPSEEK_MODEL")),
		QuoteTimeout:    quoteTimeout,
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
