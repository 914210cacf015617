package icons

import (
	"net/url"
	"strings"
)

const (
	defaultSkillIconsTheme = "dark"
	fallbackTechnology     = "javascript"
)

// Dimensions 描述图标或徽章的展示尺寸以及排版提示。
type Dimensions struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Spacing int    `json:"spacing"`
	Shape   string `json:"shape"`
}

var (
	defaultDimensions = Dimensions{Width: 40, Height: 40, Spacing: 8, Shape: "rounded"}
	badgeStyles       = map[string]Dimensions{
		"flat":          {Width: 85, Height: 20, Spacing: 6, Shape: "rounded-sm"},
		"flat-square":   {Width: 85, Height: 20, Spacing: 6, Shape: "rounded-none"},
		"plastic":       {Width: 85, Height: 20, Spacing: 6, Shape: "rounded-sm"},
		"for-the-badge": {Width: 130, Height: 28, Spacing: 8, Shape: "rounded-md"},
		"social":        {Width: 95, Height: 20, Spacing: 6, Shape: "rounded-sm"},
	}
)

// provider 封装单个图标服务的 URL 规则，新增服务只需新增一个实现并注册。
type provider interface {
	// single builds one URL for the whole name list.
	single(names []string, style string) string
	// item builds the URL for one technology.
	item(name, style string) string
	dimensions(style string) Dimensions
}

var providers = map[Service]provider{
	ServiceSkillIcons: skillIconsProvider{},
	ServiceDevicon:    deviconProvider{},
	ServiceTechIcons:  deviconProvider{},
	ServiceShields:    shieldsProvider{},
}

func providerFor(service Service) provider {
	if p, ok := providers[service]; ok {
		return p
	}
	return providers[DefaultService]
}

// SingleURL 为一组技术生成一个图标地址；只有支持批量渲染的服务会包含全部名称，
// 其余服务只渲染第一个名称。
func SingleURL(service Service, names []string, style string) string {
	return providerFor(service).single(names, style)
}

// MultipleURLs 为每个技术名各生成一个地址，长度与顺序与输入一致。
func MultipleURLs(service Service, names []string, style string) []string {
	p := providerFor(service)
	urls := make([]string, 0, len(names))
	for _, name := range names {
		urls = append(urls, p.item(name, style))
	}
	return urls
}

// BadgeDimensions 返回服务在指定样式下的展示尺寸。
func BadgeDimensions(service Service, style string) Dimensions {
	return providerFor(service).dimensions(style)
}

type skillIconsProvider struct{}

func (skillIconsProvider) single(names []string, style string) string {
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, url.QueryEscape(strings.ToLower(name)))
	}
	if style == "" {
		style = defaultSkillIconsTheme
	}
	return skillIconsBaseURL + "?i=" + strings.Join(ids, ",") + "&theme=" + url.QueryEscape(style)
}

func (p skillIconsProvider) item(name, style string) string {
	return p.single([]string{name}, style)
}

func (skillIconsProvider) dimensions(string) Dimensions {
	return defaultDimensions
}

type deviconProvider struct{}

func (deviconProvider) single(names []string, _ string) string {
	name := fallbackTechnology
	if len(names) > 0 && names[0] != "" {
		name = names[0]
	}
	return deviconURL(name)
}

func (deviconProvider) item(name, _ string) string {
	return deviconURL(name)
}

func (deviconProvider) dimensions(string) Dimensions {
	return defaultDimensions
}

type shieldsProvider struct{}

func (shieldsProvider) single(names []string, style string) string {
	name := fallbackTechnology
	if len(names) > 0 && names[0] != "" {
		name = names[0]
	}
	return shieldsURL(name, style)
}

func (shieldsProvider) item(name, style string) string {
	return shieldsURL(name, style)
}

func (shieldsProvider) dimensions(style string) Dimensions {
	if dims, ok := badgeStyles[style]; ok {
		return dims
	}
	return defaultDimensions
}
