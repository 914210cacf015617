package service

import (
	"strings"
	"unicode/utf8"

	"github.com/readmeforge/internal/logger"
)

const maxAILogSnippetRunes = 1024

// logAIExchange 在 debug 级别输出 AI 请求与响应的关键信息，方便排查模型行为。
func logAIExchange(log *logger.Logger, kind, phase, content string) {
	if !log.Enabled("debug") {
		return
	}

	trimmed := strings.TrimSpace(content)
	runeCount := utf8.RuneCountInString(trimmed)
	snippet := trimmed
	if trimmed == "" {
		snippet = "<empty>"
	} else if runeCount > maxAILogSnippetRunes {
		snippet = string([]rune(trimmed)[:maxAILogSnippetRunes]) + "…(truncated)"
	}

	log.WithFields(map[string]any{
		"ai_kind":  kind,
		"ai_phase": phase,
		"runes":    runeCount,
		"content":  snippet,
	}).Debug("ai exchange")
}
