package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/readmeforge/internal/config"
	"github.com/readmeforge/internal/logger"
)

const (
	// AIProviderOpenAI 表示使用 OpenAI 兼容接口。
	AIProviderOpenAI = "openai"
	// AIProviderDeepSeek 表示使用 DeepSeek 能力。
	AIProviderDeepSeek = "deepseek"

	defaultOpenAIBaseURL   = "https://api.openai.com/v1"
	defaultDeepSeekBaseURL = "https://api.deepseek.com/v1"
	defaultAITimeout       = 30 * time.Second
	maxAIResponseBytes     = 1 << 20
)

var supportedAIProviders = []string{AIProviderOpenAI, AIProviderDeepSeek}

// ErrAIAPIKeyMissing 表示当前选择的 AI 平台未配置 API Key。
var ErrAIAPIKeyMissing = errors.New("api key is required")

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// AISettings 描述调用大模型所需的凭据与地址。
type AISettings struct {
	Provider        string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	DeepSeekAPIKey  string
	DeepSeekBaseURL string
	DeepSeekModel   string
	Timeout         time.Duration
}

// SettingsFromConfig copies the AI related fields out of the application config.
func SettingsFromConfig(cfg config.AppConfig) AISettings {
	return AISettings{
		Provider:        cfg.AIProvider,
		OpenAIAPIKey:    cfg.OpenAIAPIKey,
		OpenAIBaseURL:   cfg.OpenAIBaseURL,
		OpenAIModel:     cfg.OpenAIModel,
		DeepSeekAPIKey:  cfg.DeepSeekAPIKey,
		DeepSeekBaseURL: cfg.DeepSeekBaseURL,
		DeepSeekModel:   cfg.DeepSeekModel,
		Timeout:         cfg.QuoteTimeout,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type aiChatRequest struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Temperature  float64
}

type aiChatResponse struct {
	Content          string
	PromptTokens     int
	CompletionTokens int
}

type aiChatClient struct {
	settings             AISettings
	http                 httpDoer
	log                  *logger.Logger
	defaultOpenAIModel   string
	defaultDeepSeekModel string
}

func newAIChatClient(settings AISettings, log *logger.Logger, defaultOpenAIModel, defaultDeepSeekModel string) *aiChatClient {
	if log == nil {
		log = logger.Nop()
	}
	return &aiChatClient{
		settings:             settings,
		http:                 &http.Client{Timeout: timeoutOrDefault(settings.Timeout)},
		log:                  log,
		defaultOpenAIModel:   strings.TrimSpace(defaultOpenAIModel),
		defaultDeepSeekModel: strings.TrimSpace(defaultDeepSeekModel),
	}
}

func timeoutOrDefault(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return defaultAITimeout
	}
	return timeout
}

func (c *aiChatClient) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.http = &http.Client{Timeout: timeoutOrDefault(c.settings.Timeout)}
		return
	}
	c.http = client
}

func normalizeAIProvider(provider string) string {
	trimmed := strings.ToLower(strings.TrimSpace(provider))
	for _, candidate := range supportedAIProviders {
		if trimmed == candidate {
			return candidate
		}
	}
	return ""
}

// endpoint 解析当前平台的 API Key、地址、模型与展示名称。
func (c *aiChatClient) endpoint() (apiKey, base, model, label string) {
	switch normalizeAIProvider(c.settings.Provider) {
	case AIProviderDeepSeek:
		apiKey = strings.TrimSpace(c.settings.DeepSeekAPIKey)
		base = strings.TrimSpace(c.settings.DeepSeekBaseURL)
		if base == "" {
			base = defaultDeepSeekBaseURL
		}
		model = strings.TrimSpace(c.settings.DeepSeekModel)
		if model == "" {
			model = c.defaultDeepSeekModel
		}
		label = "DeepSeek"
	default:
		apiKey = strings.TrimSpace(c.settings.OpenAIAPIKey)
		base = strings.TrimSpace(c.settings.OpenAIBaseURL)
		if base == "" {
			base = defaultOpenAIBaseURL
		}
		model = strings.TrimSpace(c.settings.OpenAIModel)
		if model == "" {
			model = c.defaultOpenAIModel
		}
		label = "OpenAI"
	}
	return apiKey, strings.TrimRight(base, "/"), model, label
}

func (c *aiChatClient) call(ctx context.Context, req aiChatRequest) (aiChatResponse, error) {
	apiKey, base, model, label := c.endpoint()
	if apiKey == "" {
		return aiChatResponse{}, ErrAIAPIKeyMissing
	}

	client := c.http
	if client == nil {
		client = http.DefaultClient
	}

	maxTokens := req.MaxTokens
	if maxTokens < 0 {
		maxTokens = 0
	}

	payload := chatCompletionRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: strings.TrimSpace(req.SystemPrompt)},
			{Role: "user", Content: req.UserPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: req.Temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return aiChatResponse{}, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return aiChatResponse{}, fmt.Errorf("create %s request: %w", label, err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "readmeforge-ai/1.0")

	resp, err := client.Do(httpReq)
	if err != nil {
		return aiChatResponse{}, fmt.Errorf("call %s api: %w", label, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxAIResponseBytes))
	if err != nil {
		return aiChatResponse{}, fmt.Errorf("read %s response: %w", label, err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return aiChatResponse{}, fmt.Errorf("%s api error: %s", label, resp.Status)
		}
		return aiChatResponse{}, fmt.Errorf("decode %s response: %w", label, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		errMsg := strings.TrimSpace(completion.Error.Message)
		if errMsg == "" {
			errMsg = resp.Status
		}
		return aiChatResponse{}, fmt.Errorf("%s api error: %s", label, errMsg)
	}

	if len(completion.Choices) == 0 {
		return aiChatResponse{}, fmt.Errorf("%s api returned no choices", label)
	}

	return aiChatResponse{
		Content:          strings.TrimSpace(completion.Choices[0].Message.Content),
		PromptTokens:     completion.Usage.PromptTokens,
		CompletionTokens: completion.Usage.CompletionTokens,
	}, nil
}
