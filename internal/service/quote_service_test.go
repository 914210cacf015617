package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/readmeforge/internal/config"
	"github.com/readmeforge/internal/logger"
	"github.com/readmeforge/internal/profile"
	"github.com/stretchr/testify/require"
)

type fakeHTTPClient struct {
	handler func(*http.Request) (*http.Response, error)
}

func (f fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	if f.handler == nil {
		return nil, errors.New("no handler configured")
	}
	return f.handler(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func completion(content string) string {
	payload, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{{"message": map[string]string{"role": "assistant", "content": content}}},
		"usage":   map[string]int{"prompt_tokens": 42, "completion_tokens": 12},
	})
	return string(payload)
}

func sampleInput() QuoteInput {
	return QuoteInput{
		Name:        "Ada",
		Role:        "student",
		Domain:      "Systems",
		CollegeName: "MIT",
		TechStack:   "python, rust,,",
	}
}

func TestQuoteServiceGenerateQuote(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(AISettings{
		Provider:      AIProviderOpenAI,
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: "https://openai.test/v1/",
	}, nil)
	svc.SetHTTPClient(fakeHTTPClient{handler: func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var payload chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, defaultOpenAIQuoteModel, payload.Model)
		require.Len(t, payload.Messages, 2)
		require.Equal(t, "system", payload.Messages[0].Role)
		require.Contains(t, payload.Messages[0].Content, "25 words")
		require.Contains(t, payload.Messages[1].Content, "Name: Ada")
		require.Contains(t, payload.Messages[1].Content, "College: MIT")
		require.Contains(t, payload.Messages[1].Content, "Company: N/A")
		require.Contains(t, payload.Messages[1].Content, "Tech Stack: python, rust")
		require.Equal(t, defaultQuoteMaxTokens, payload.MaxTokens)

		return jsonResponse(http.StatusOK, completion(`"Systems thinking in **Python** and Rust."`)), nil
	}})

	result, err := svc.GenerateQuote(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, "Systems thinking in Python and Rust.", result.Quote)
	require.Equal(t, 42, result.PromptTokens)
	require.Equal(t, 12, result.CompletionTokens)
}

func TestQuoteServiceUsesDeepSeek(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(AISettings{
		Provider:        "DeepSeek",
		DeepSeekAPIKey:  "ds-key",
		DeepSeekBaseURL: "https://deepseek.test/v1",
		DeepSeekModel:   "deepseek-reasoner",
	}, nil)
	svc.SetHTTPClient(fakeHTTPClient{handler: func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "deepseek.test", r.URL.Host)
		require.Equal(t, "Bearer ds-key", r.Header.Get("Authorization"))

		var payload chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		require.Equal(t, "deepseek-reasoner", payload.Model)
		return jsonResponse(http.StatusOK, completion("Ship it.")), nil
	}})

	result, err := svc.GenerateQuote(context.Background(), sampleInput())
	require.NoError(t, err)
	require.Equal(t, "Ship it.", result.Quote)
}

func TestQuoteServiceMissingKey(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(AISettings{Provider: AIProviderDeepSeek, OpenAIAPIKey: "sk-openai"}, nil)
	svc.SetHTTPClient(fakeHTTPClient{})

	_, err := svc.GenerateQuote(context.Background(), sampleInput())
	require.ErrorIs(t, err, ErrAIAPIKeyMissing)
}

func TestQuoteServiceUpstreamErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		resp    *http.Response
		err     error
		message string
	}{
		{"api error", jsonResponse(http.StatusUnauthorized, `{"error":{"message":"invalid key"}}`), nil, "invalid key"},
		{"non json error", jsonResponse(http.StatusBadGateway, "<html>bad gateway</html>"), nil, "OpenAI api error"},
		{"no choices", jsonResponse(http.StatusOK, `{"choices":[]}`), nil, "no choices"},
		{"transport", nil, errors.New("dial tcp: refused"), "refused"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewQuoteService(AISettings{OpenAIAPIKey: "sk"}, nil)
			svc.SetHTTPClient(fakeHTTPClient{handler: func(*http.Request) (*http.Response, error) {
				return tc.resp, tc.err
			}})

			_, err := svc.GenerateQuote(context.Background(), sampleInput())
			require.ErrorContains(t, err, tc.message)
		})
	}
}

func TestQuoteServiceRejectsSelfReference(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(AISettings{OpenAIAPIKey: "sk"}, nil)
	svc.SetHTTPClient(fakeHTTPClient{handler: func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, completion("As an AI language model, I love Go.")), nil
	}})

	_, err := svc.GenerateQuote(context.Background(), sampleInput())
	require.ErrorIs(t, err, ErrQuoteRejected)
}

func TestCleanQuote(t *testing.T) {
	t.Parallel()

	quote, err := cleanQuote("Quote: “Build *boldly* with `Go`.”\nSecond line")
	require.NoError(t, err)
	require.Equal(t, "Build boldly with Go.", quote)

	long := strings.Repeat("word ", 40)
	quote, err = cleanQuote(long)
	require.NoError(t, err)
	require.Len(t, strings.Fields(quote), maxQuoteWords)

	huge := strings.Repeat("x", 300)
	quote, err = cleanQuote(huge)
	require.NoError(t, err)
	require.Len(t, []rune(quote), maxQuoteRunes)

	_, err = cleanQuote(` "" `)
	require.ErrorIs(t, err, ErrQuoteRejected)
}

type stubGenerator struct {
	result QuoteResult
	err    error
	panics bool
}

func (s stubGenerator) GenerateQuote(context.Context, QuoteInput) (QuoteResult, error) {
	if s.panics {
		panic("boom")
	}
	return s.result, s.err
}

func TestSafeQuote(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	quote, ok := SafeQuote(ctx, stubGenerator{result: QuoteResult{Quote: "Keep shipping."}}, sampleInput())
	require.True(t, ok)
	require.Equal(t, "Keep shipping.", quote)

	quote, ok = SafeQuote(ctx, stubGenerator{err: ErrAIAPIKeyMissing}, sampleInput())
	require.False(t, ok)
	require.Empty(t, quote)

	quote, ok = SafeQuote(ctx, stubGenerator{panics: true}, sampleInput())
	require.False(t, ok)
	require.Empty(t, quote)

	_, ok = SafeQuote(ctx, stubGenerator{result: QuoteResult{Quote: "  "}}, sampleInput())
	require.False(t, ok)

	_, ok = SafeQuote(ctx, nil, sampleInput())
	require.False(t, ok)
}

func TestQuoteInputFromProfile(t *testing.T) {
	t.Parallel()

	p := profile.Default()
	input := QuoteInputFromProfile(p)
	require.Equal(t, p.Name, input.Name)
	require.Equal(t, "professional", input.Role)
	require.Equal(t, p.TechStack, input.TechStack)
}

func TestSettingsFromConfigAndTimeout(t *testing.T) {
	t.Parallel()

	settings := SettingsFromConfig(config.AppConfig{
		AIProvider:   "deepseek",
		OpenAIAPIKey: "sk",
		QuoteTimeout: 5 * time.Second,
	})
	require.Equal(t, "deepseek", settings.Provider)
	require.Equal(t, "sk", settings.OpenAIAPIKey)

	client := newAIChatClient(settings, nil, "a", "b")
	httpClient, ok := client.http.(*http.Client)
	require.True(t, ok)
	require.Equal(t, 5*time.Second, httpClient.Timeout)

	client = newAIChatClient(AISettings{}, nil, "a", "b")
	client.SetHTTPClient(nil)
	httpClient, ok = client.http.(*http.Client)
	require.True(t, ok)
	require.Equal(t, defaultAITimeout, httpClient.Timeout)
}

func TestLogAIExchangeWritesAtDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	logAIExchange(log, "QUOTE", "prompt", strings.Repeat("é", maxAILogSnippetRunes+5))
	require.Contains(t, buf.String(), `"ai_kind":"QUOTE"`)
	require.Contains(t, buf.String(), "(truncated)")

	buf.Reset()
	quiet, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)
	logAIExchange(quiet, "QUOTE", "prompt", "hidden")
	require.Empty(t, buf.String())
}
