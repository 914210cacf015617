package profile

import (
	"strings"

	"github.com/readmeforge/internal/icons"
	"github.com/readmeforge/internal/theme"
)

// Role 表示用户身份，决定 About Me 中的身份描述。
type Role string

const (
	RoleStudent      Role = "student"
	RoleProfessional Role = "professional"
	RoleFreelancer   Role = "freelancer"
)

// Socials 保存社交账号，空字符串表示未填写。
type Socials struct {
	LinkedIn string `json:"linkedin" yaml:"linkedin" form:"linkedin" validate:"max=50"`
	Twitter  string `json:"twitter" yaml:"twitter" form:"twitter" validate:"max=15"`
	Website  string `json:"website" yaml:"website" form:"website" validate:"omitempty,url"`
	Email    string `json:"email" yaml:"email" form:"email" validate:"omitempty,email"`
}

// Empty reports whether no social field is populated.
func (s Socials) Empty() bool {
	return s.LinkedIn == "" && s.Twitter == "" && s.Website == "" && s.Email == ""
}

// Profile 是表单提交的完整状态，也是 README 生成的唯一输入。
type Profile struct {
	Name             string        `json:"name" yaml:"name" form:"name" validate:"required,max=50,alphaspace"`
	GitHubUsername   string        `json:"githubUsername" yaml:"githubUsername" form:"githubUsername" validate:"required,max=39,github_username"`
	Role             Role          `json:"role" yaml:"role" form:"role" validate:"required,oneof=student professional freelancer"`
	Domain           string        `json:"domain" yaml:"domain" form:"domain" validate:"required,max=100"`
	CompanyName      string        `json:"companyName" yaml:"companyName" form:"companyName" validate:"max=100"`
	CompanyURL       string        `json:"companyUrl" yaml:"companyUrl" form:"companyUrl" validate:"omitempty,url"`
	CollegeName      string        `json:"collegeName" yaml:"collegeName" form:"collegeName" validate:"max=100"`
	Bio              string        `json:"bio" yaml:"bio" form:"bio" validate:"required,min=10,max=500"`
	TechStack        string        `json:"techStack" yaml:"techStack" form:"techStack" validate:"required,max=1000"`
	Socials          Socials       `json:"socials" yaml:"socials"`
	StatsTheme       string        `json:"statsTheme" yaml:"statsTheme" form:"statsTheme" validate:"required,stats_theme"`
	IconStyle        string        `json:"techIconsStyle" yaml:"techIconsStyle" form:"techIconsStyle"`
	IconService      icons.Service `json:"iconService" yaml:"iconService" form:"iconService" validate:"required,icon_service"`
	ShowTrophies     bool          `json:"showTrophies" yaml:"showTrophies" form:"showTrophies"`
	ShowStreak       bool          `json:"showStreak" yaml:"showStreak" form:"showStreak"`
	ShowContribution bool          `json:"showContribution" yaml:"showContribution" form:"showContribution"`
	Quote            string        `json:"quote" yaml:"quote" form:"quote" validate:"max=200"`
}

// Default 返回表单首次打开时的示例资料。
func Default() Profile {
	return Profile{
		Name:             "Your Name",
		GitHubUsername:   "your-username",
		Role:             RoleProfessional,
		Domain:           "Software Engineering",
		Bio:              "I am a passionate developer who loves to build amazing things.",
		TechStack:        "react,nextjs,nodejs,tailwindcss,typescript",
		StatsTheme:       theme.DefaultStatsTheme,
		IconStyle:        "dark",
		IconService:      icons.DefaultService,
		ShowTrophies:     true,
		ShowStreak:       true,
		ShowContribution: true,
		Quote:            "Building the future, one line of code at a time.",
	}
}

// ApplyDefaults fills the presentation settings left blank by partial inputs such as YAML files.
func (p *Profile) ApplyDefaults() {
	if strings.TrimSpace(p.StatsTheme) == "" {
		p.StatsTheme = theme.DefaultStatsTheme
	}
	if strings.TrimSpace(string(p.IconService)) == "" {
		p.IconService = icons.DefaultService
	}
	if strings.TrimSpace(p.IconStyle) == "" {
		if cfg := icons.Config(p.IconService); cfg.SupportsThemes && len(cfg.Themes) > 0 {
			p.IconStyle = cfg.Themes[0]
		}
	}
}

// Tokens 拆分技术栈字段，保留顺序与重复项，只丢弃空白项。
func (p Profile) Tokens() []string {
	return SplitTechStack(p.TechStack)
}

// SplitTechStack splits a comma-joined stack into its non-empty tokens.
func SplitTechStack(stack string) []string {
	parts := strings.Split(stack, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		tokens = append(tokens, trimmed)
	}
	return tokens
}

// ToggleTech 模拟技术选择器的点选：已选中则移除，否则追加到末尾，结果按集合去重。
func ToggleTech(stack, name string) string {
	name = strings.TrimSpace(name)
	selected := make([]string, 0)
	seen := make(map[string]struct{})
	for _, token := range SplitTechStack(stack) {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		selected = append(selected, token)
	}
	if name == "" {
		return strings.Join(selected, ",")
	}

	if _, ok := seen[name]; ok {
		kept := selected[:0]
		for _, token := range selected {
			if token != name {
				kept = append(kept, token)
			}
		}
		return strings.Join(kept, ",")
	}
	return strings.Join(append(selected, name), ",")
}
