package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/readmeforge/internal/logger"
	"github.com/readmeforge/internal/profile"
)

// QuoteInput 描述生成个性化签名所需的资料。
type QuoteInput struct {
	Name        string
	Role        string
	Domain      string
	CompanyName string
	CollegeName string
	TechStack   string
}

// QuoteInputFromProfile extracts the quote context from a profile.
func QuoteInputFromProfile(p profile.Profile) QuoteInput {
	return QuoteInput{
		Name:        p.Name,
		Role:        string(p.Role),
		Domain:      p.Domain,
		CompanyName: p.CompanyName,
		CollegeName: p.CollegeName,
		TechStack:   p.TechStack,
	}
}

// QuoteResult 返回清洗后的签名及 token 用量。
type QuoteResult struct {
	Quote            string
	PromptTokens     int
	CompletionTokens int
}

// QuoteGenerator 定义签名生成能力，便于在 handler 中注入不同实现。
type QuoteGenerator interface {
	GenerateQuote(ctx context.Context, input QuoteInput) (QuoteResult, error)
}

// ErrQuoteRejected 表示模型输出不可用，例如为空或暴露了 AI 身份。
var ErrQuoteRejected = errors.New("generated quote rejected")

const (
	defaultOpenAIQuoteModel   = "gpt-4o-mini"
	defaultDeepSeekQuoteModel = "deepseek-chat"
	defaultQuoteMaxTokens     = 80
	defaultQuoteTemperature   = 0.8
	maxQuoteWords             = 25
	maxQuoteRunes             = 200
)

const defaultQuoteSystemPrompt = `You write short personalized quotes for GitHub profile READMEs.
Write one unique, modern and inspiring quote that reflects the user's profile.
Rules:
- At most 25 words.
- Mention the user's domain and weave in their tech stack.
- If the tech stack mentions AI, make the quote about AI. If it mentions backend or frontend, relate it to that area.
- If the user is a student, reflect that.
- Reply with the quote only, without quotation marks or markdown.
- Never mention that you are an AI.`

var selfReferencePhrases = []string{"as an ai", "i am an ai", "i'm an ai", "language model"}

// QuoteService 基于大模型接口生成 README 顶部的签名。
type QuoteService struct {
	client *aiChatClient
	log    *logger.Logger
}

// NewQuoteService 构造 QuoteService，log 为空时丢弃日志。
func NewQuoteService(settings AISettings, log *logger.Logger) *QuoteService {
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteService{
		client: newAIChatClient(settings, log, defaultOpenAIQuoteModel, defaultDeepSeekQuoteModel),
		log:    log,
	}
}

// SetHTTPClient 覆盖默认 HTTP 客户端，主要用于测试。
func (s *QuoteService) SetHTTPClient(client httpDoer) {
	s.client.SetHTTPClient(client)
}

// GenerateQuote 调用当前配置的 AI 平台生成签名，未配置 API Key 时返回 ErrAIAPIKeyMissing。
func (s *QuoteService) GenerateQuote(ctx context.Context, input QuoteInput) (QuoteResult, error) {
	userPrompt := buildQuotePrompt(input)
	logAIExchange(s.log, "QUOTE", "prompt", userPrompt)

	result, err := s.client.call(ctx, aiChatRequest{
		SystemPrompt: defaultQuoteSystemPrompt,
		UserPrompt:   userPrompt,
		MaxTokens:    defaultQuoteMaxTokens,
		Temperature:  defaultQuoteTemperature,
	})
	if err != nil {
		s.log.Warn("quote request failed: " + err.Error())
		return QuoteResult{}, fmt.Errorf("generate quote: %w", err)
	}
	logAIExchange(s.log, "QUOTE", "response", result.Content)

	quote, err := cleanQuote(result.Content)
	if err != nil {
		s.log.Warn("quote rejected: " + err.Error())
		return QuoteResult{}, err
	}

	return QuoteResult{
		Quote:            quote,
		PromptTokens:     result.PromptTokens,
		CompletionTokens: result.CompletionTokens,
	}, nil
}

// SafeQuote 吞掉生成过程中的任何失败（包括 panic），失败时返回 ("", false)。
func SafeQuote(ctx context.Context, gen QuoteGenerator, input QuoteInput) (quote string, ok bool) {
	if gen == nil {
		return "", false
	}
	defer func() {
		if recover() != nil {
			quote, ok = "", false
		}
	}()

	result, err := gen.GenerateQuote(ctx, input)
	if err != nil || strings.TrimSpace(result.Quote) == "" {
		return "", false
	}
	return result.Quote, true
}

func buildQuotePrompt(input QuoteInput) string {
	var builder strings.Builder
	writeField := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			value = "N/A"
		}
		builder.WriteString(label)
		builder.WriteString(": ")
		builder.WriteString(value)
		builder.WriteString("\n")
	}

	writeField("Name", input.Name)
	writeField("Role", input.Role)
	writeField("Domain", input.Domain)
	writeField("Company", input.CompanyName)
	writeField("College", input.CollegeName)
	writeField("Tech Stack", strings.Join(profile.SplitTechStack(input.TechStack), ", "))
	return strings.TrimSpace(builder.String())
}

// cleanQuote 去掉引号与 markdown 标记，并限制在 25 个词、200 个字符以内。
func cleanQuote(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}
	if lower := strings.ToLower(text); strings.HasPrefix(lower, "quote:") {
		text = strings.TrimSpace(text[len("quote:"):])
	}
	text = strings.TrimLeft(text, "#> ")
	text = strings.NewReplacer("**", "", "__", "", "`", "", "*", "").Replace(text)
	text = strings.Trim(text, " \"'“”‘’_")

	words := strings.Fields(text)
	if len(words) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrQuoteRejected)
	}
	if len(words) > maxQuoteWords {
		words = words[:maxQuoteWords]
	}
	text = strings.Join(words, " ")

	if utf8.RuneCountInString(text) > maxQuoteRunes {
		text = strings.TrimSpace(string([]rune(text)[:maxQuoteRunes]))
	}

	lower := strings.ToLower(text)
	for _, phrase := range selfReferencePhrases {
		if strings.Contains(lower, phrase) {
			return "", fmt.Errorf("%w: self reference", ErrQuoteRejected)
		}
	}
	return text, nil
}
