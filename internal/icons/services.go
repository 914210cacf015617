package icons

import "strings"

// Service identifies an external icon/badge rendering backend.
type Service string

const (
	// ServiceSkillIcons 批量渲染图标，支持 light/dark 主题。
	ServiceSkillIcons Service = "skillicons"
	// ServiceDevicon 通过 JSDelivr CDN 按技术 slug 获取单个图标。
	ServiceDevicon Service = "devicon"
	// ServiceTechIcons 与 Devicon 共用同一套图标资源。
	ServiceTechIcons Service = "techicons"
	// ServiceShields 渲染带 logo 的徽章，支持多种徽章样式。
	ServiceShields Service = "shields"

	// DefaultService 是表单默认选择的图标服务。
	DefaultService = ServiceSkillIcons
)

const (
	skillIconsBaseURL = "https://skillicons.dev/icons"
	deviconBaseURL    = "https://cdn.jsdelivr.net/gh/devicons/devicon@latest/icons"
	techIconsBaseURL  = "https://techicons.dev/icons"
	shieldsBaseURL    = "https://img.shields.io/badge"
)

// ServiceConfig 描述图标服务的静态信息。
type ServiceConfig struct {
	ID             Service  `json:"id"`
	Name           string   `json:"name"`
	BaseURL        string   `json:"baseUrl"`
	Description    string   `json:"description"`
	SupportsThemes bool     `json:"supportsThemes"`
	Themes         []string `json:"themes"`
	Format         string   `json:"format"`
}

var serviceDefinitions = []ServiceConfig{
	{
		ID:             ServiceSkillIcons,
		Name:           "Skill Icons",
		BaseURL:        skillIconsBaseURL,
		Description:    "Uniform icon set rendered as a single strip, light or dark",
		SupportsThemes: true,
		Themes:         []string{"dark", "light"},
		Format:         "svg",
	},
	{
		ID:          ServiceDevicon,
		Name:        "Devicon",
		BaseURL:     deviconBaseURL,
		Description: "Comprehensive programming language and tool icons",
		Format:      "svg",
	},
	{
		ID:          ServiceTechIcons,
		Name:        "TechIcons.dev",
		BaseURL:     techIconsBaseURL,
		Description: "SVG and PNG tech icons for modern development",
		Format:      "svg",
	},
	{
		ID:             ServiceShields,
		Name:           "Shields.io",
		BaseURL:        shieldsBaseURL,
		Description:    "Customizable badges with logos, colors, and styles",
		SupportsThemes: true,
		Themes:         []string{"flat", "flat-square", "plastic", "for-the-badge", "social"},
		Format:         "svg",
	},
}

// Services returns the configuration of every supported service in display order.
func Services() []ServiceConfig {
	configs := make([]ServiceConfig, 0, len(serviceDefinitions))
	for _, def := range serviceDefinitions {
		def.Themes = append([]string(nil), def.Themes...)
		configs = append(configs, def)
	}
	return configs
}

// Config 返回服务配置，未知服务回退到 DefaultService。
func Config(service Service) ServiceConfig {
	for _, def := range serviceDefinitions {
		if def.ID == service {
			def.Themes = append([]string(nil), def.Themes...)
			return def
		}
	}
	return Config(DefaultService)
}

// ParseService normalizes raw user input into a known Service.
func ParseService(raw string) (Service, bool) {
	candidate := Service(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := providers[candidate]; ok {
		return candidate, true
	}
	return DefaultService, false
}

// SupportsStyle reports whether style is one of the service's accepted themes.
// Services without a theme axis accept any style because they ignore it.
func SupportsStyle(service Service, style string) bool {
	cfg := Config(service)
	if !cfg.SupportsThemes {
		return true
	}
	for _, candidate := range cfg.Themes {
		if candidate == style {
			return true
		}
	}
	return false
}
