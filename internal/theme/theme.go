package theme

import "strings"

const (
	// DefaultStatsTheme 是表单初始使用的统计卡片主题。
	DefaultStatsTheme = "dracula"
	// DefaultContributionTheme 是贡献图在无法映射时使用的主题。
	DefaultContributionTheme = "github_dark"
)

// Option describes a selectable stats theme for form widgets.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type themeMapping struct {
	Stats        string
	Contribution string
}

var (
	themeDefinitions = []themeMapping{
		{Stats: "dracula", Contribution: "dracula"},
		{Stats: "gruvbox", Contribution: "gruvbox"},
		{Stats: "dark", Contribution: "github_dark"},
		{Stats: "radical", Contribution: "radical"},
		{Stats: "merko", Contribution: "merko"},
		{Stats: "tokyonight", Contribution: "tokyo_night"},
		{Stats: "onedark", Contribution: "one_dark"},
		{Stats: "cobalt", Contribution: "cobalt"},
		{Stats: "synthwave", Contribution: "synthwave"},
		{Stats: "highcontrast", Contribution: "highcontrast"},
		{Stats: "prussian", Contribution: "prussian"},
		{Stats: "monokai", Contribution: "monokai"},
		{Stats: "vue", Contribution: "vue"},
		{Stats: "vue-dark", Contribution: "vue_dark"},
		{Stats: "shadownomicon", Contribution: "shadownomicon"},
		{Stats: "graywhite", Contribution: "graywhite"},
		{Stats: "vision-friendly-dark", Contribution: "vision-friendly-dark"},
		{Stats: "ayu-mirage", Contribution: "ayu-mirage"},
		{Stats: "midnight-purple", Contribution: "midnight-purple"},
		{Stats: "calm", Contribution: "calm"},
		{Stats: "flag-india", Contribution: "flag_india"},
		{Stats: "omni", Contribution: "omni"},
		{Stats: "react", Contribution: "react"},
		{Stats: "jolly", Contribution: "jolly"},
		{Stats: "maroongold", Contribution: "maroongold"},
		{Stats: "yeblu", Contribution: "yeblu"},
		{Stats: "blue-green", Contribution: "blue-green"},
		{Stats: "amethyst", Contribution: "amethyst"},
		{Stats: "buefy", Contribution: "buefy"},
		{Stats: "blue", Contribution: "blueberry"},
		{Stats: "slateorange", Contribution: "slateorange"},
		{Stats: "kacho_ga", Contribution: "kacho_ga"},
		{Stats: "outrun", Contribution: "outrun"},
		{Stats: "chartreuse-dark", Contribution: "chartreuse-dark"},
		{Stats: "github_dark", Contribution: "github_dark"},
		{Stats: "github_light", Contribution: "github"},
		{Stats: "solarized-light", Contribution: "solarized"},
		{Stats: "solarized_dark", Contribution: "solarized_dark"},
		{Stats: "gotham", Contribution: "gotham"},
		{Stats: "material-palenight", Contribution: "material-palenight"},
		{Stats: "algolia", Contribution: "algolia"},
		{Stats: "great-gatsby", Contribution: "great-gatsby"},
		{Stats: "nord", Contribution: "nord"},
		{Stats: "catppuccin", Contribution: "catppuccin_latte"},
		{Stats: "bear", Contribution: "bear"},
		{Stats: "swift", Contribution: "swift"},
		{Stats: "aura", Contribution: "aura"},
		{Stats: "aura-dark", Contribution: "aura_dark"},
		{Stats: "whatsapp-dark", Contribution: "whatsapp-dark"},
	}
	contributionLookup = func() map[string]string {
		lookup := make(map[string]string, len(themeDefinitions))
		for _, def := range themeDefinitions {
			lookup[def.Stats] = def.Contribution
		}
		return lookup
	}()
)

// StatsThemes 按展示顺序返回全部统计卡片主题。
func StatsThemes() []string {
	themes := make([]string, 0, len(themeDefinitions))
	for _, def := range themeDefinitions {
		themes = append(themes, def.Stats)
	}
	return themes
}

// ContributionTheme 将统计卡片主题映射为贡献图主题，未知主题回退到 DefaultContributionTheme。
func ContributionTheme(statsTheme string) string {
	if mapped, ok := contributionLookup[statsTheme]; ok {
		return mapped
	}
	return DefaultContributionTheme
}

// IsValid reports whether theme belongs to the stats theme set.
func IsValid(theme string) bool {
	_, ok := contributionLookup[theme]
	return ok
}

// DisplayName turns "vue-dark" into "Vue Dark".
func DisplayName(theme string) string {
	words := strings.Split(theme, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// Options returns value/label pairs for select widgets.
func Options() []Option {
	options := make([]Option, 0, len(themeDefinitions))
	for _, def := range themeDefinitions {
		options = append(options, Option{Value: def.Stats, Label: DisplayName(def.Stats)})
	}
	return options
}
