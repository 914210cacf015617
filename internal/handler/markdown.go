package handler

import (
	"bytes"
	"html/template"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	// README 中包含 <p align> 与 <img> 等原始 HTML，渲染时放行后再统一清洗。
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe(), html.WithXHTML()),
	)
	previewSanitizer = buildPreviewSanitizer()

	alignPattern = regexp.MustCompile(`^(left|center|right)$`)
)

// buildPreviewSanitizer 只放行 README 用到的元素，img 的 width/height 只接受整数。
func buildPreviewSanitizer() *bluemonday.Policy {
	policy := bluemonday.NewPolicy()
	policy.AllowStandardAttributes()
	policy.AllowStandardURLs()

	policy.AllowElements("h1", "h2", "h3", "h4", "h5", "h6", "br", "hr", "span",
		"strong", "em", "b", "i", "code", "pre", "del", "s", "sub", "sup")
	policy.AllowAttrs("align").Matching(alignPattern).OnElements("p", "div")
	policy.AllowElements("p", "div")
	policy.AllowAttrs("cite").OnElements("blockquote")
	policy.AllowElements("blockquote")
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowLists()
	policy.AllowTables()

	policy.AllowAttrs("src").OnElements("img")
	policy.AllowAttrs("alt").Matching(bluemonday.Paragraph).OnElements("img")
	policy.AllowAttrs("width", "height").Matching(bluemonday.Integer).OnElements("img")
	return policy
}

// renderPreview 将 README markdown 渲染为可直接嵌入页面的安全 HTML。
func renderPreview(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return template.HTML(previewSanitizer.SanitizeBytes(buf.Bytes())), nil
}
