package icons

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleURLPerService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		service  Service
		techs    []string
		style    string
		expected string
	}{
		{
			name:     "skillicons batches every name",
			service:  ServiceSkillIcons,
			techs:    []string{"react", "Go", "nodejs"},
			style:    "light",
			expected: "https://skillicons.dev/icons?i=react,go,nodejs&theme=light",
		},
		{
			name:     "skillicons defaults to dark",
			service:  ServiceSkillIcons,
			techs:    []string{"python"},
			expected: "https://skillicons.dev/icons?i=python&theme=dark",
		},
		{
			name:     "devicon uses the override table",
			service:  ServiceDevicon,
			techs:    []string{"cpp", "python"},
			expected: "https://cdn.jsdelivr.net/gh/devicons/devicon@latest/icons/cplusplus/cplusplus-original.svg",
		},
		{
			name:     "devicon falls back to javascript when empty",
			service:  ServiceDevicon,
			expected: "https://cdn.jsdelivr.net/gh/devicons/devicon@latest/icons/javascript/javascript-original.svg",
		},
		{
			name:     "techicons renders from devicon artwork",
			service:  ServiceTechIcons,
			techs:    []string{"tailwindcss"},
			expected: "https://cdn.jsdelivr.net/gh/devicons/devicon@latest/icons/tailwindcss/tailwindcss-plain.svg",
		},
		{
			name:     "shields known badge with logo color",
			service:  ServiceShields,
			techs:    []string{"react"},
			style:    "for-the-badge",
			expected: "https://img.shields.io/badge/React-61DAFB?style=for-the-badge&logo=react&logoColor=black",
		},
		{
			name:     "unknown service behaves like the default",
			service:  Service("nope"),
			techs:    []string{"rust"},
			expected: "https://skillicons.dev/icons?i=rust&theme=dark",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SingleURL(tt.service, tt.techs, tt.style))
		})
	}
}

func TestShieldsURLEscapingAndFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://img.shields.io/badge/C%23-239120?style=flat&logo=csharp",
		MultipleURLs(ServiceShields, []string{"cs"}, "")[0])
	require.Equal(t,
		"https://img.shields.io/badge/C%2B%2B-00599C?style=plastic&logo=cplusplus",
		MultipleURLs(ServiceShields, []string{"CPP"}, "plastic")[0])
	require.Equal(t,
		"https://img.shields.io/badge/Tailwind%20CSS-06B6D4?style=flat&logo=tailwindcss",
		MultipleURLs(ServiceShields, []string{"tailwindcss"}, "flat")[0])
	require.Equal(t,
		"https://img.shields.io/badge/Zig-blue?style=flat&logo=zig",
		MultipleURLs(ServiceShields, []string{"Zig"}, "")[0])
	require.Equal(t,
		"https://img.shields.io/badge/my--tool-blue?style=social&logo=my-tool",
		MultipleURLs(ServiceShields, []string{"my-tool"}, "social")[0])
	require.Equal(t,
		"https://img.shields.io/badge/Hey!%20(beta)*'s-blue?style=flat&logo=hey!%20(beta)*'s",
		MultipleURLs(ServiceShields, []string{"Hey! (beta)*'s"}, "")[0])
	require.Equal(t,
		"https://img.shields.io/badge/a%2Bb%26c-blue?style=flat&logo=a%2Bb%26c",
		MultipleURLs(ServiceShields, []string{"a+b&c"}, "")[0])
}

func TestDeviconSlugFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t, DeviconAsset{Slug: "go", Variant: VariantOriginal}, DeviconSlug("golang"))
	require.Equal(t, DeviconAsset{Slug: "graphql", Variant: VariantPlain}, DeviconSlug("GraphQL"))
	require.Equal(t, DeviconAsset{Slug: "htmx", Variant: VariantOriginal}, DeviconSlug("HTMX"))
}

func TestDeviconURLEscapesFallbackSlug(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://cdn.jsdelivr.net/gh/devicons/devicon@latest/icons/objective%20c/objective%20c-original.svg",
		SingleURL(ServiceDevicon, []string{"Objective C"}, ""))
	require.Equal(t,
		"https://cdn.jsdelivr.net/gh/devicons/devicon@latest/icons/a%22b%2Fc/a%22b%2Fc-original.svg",
		MultipleURLs(ServiceTechIcons, []string{`a"b/c`}, "")[0])
}

func TestMultipleURLsPreservesLengthAndOrder(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		nil,
		{},
		{"python"},
		{"python", "python", "definitely-not-a-tech", ""},
		{"react", "golang", "zig", "socket.io", "C#"},
	}

	for _, service := range []Service{ServiceSkillIcons, ServiceDevicon, ServiceTechIcons, ServiceShields, Service("")} {
		for _, names := range inputs {
			urls := MultipleURLs(service, names, "flat")
			require.Len(t, urls, len(names), "service %s names %v", service, names)
			for i, name := range names {
				if name == "" {
					continue
				}
				require.Equal(t, SingleURL(service, []string{name}, "flat"), urls[i])
			}
		}
	}

	urls := MultipleURLs(ServiceSkillIcons, []string{"react", "vue"}, "light")
	require.Equal(t, []string{
		"https://skillicons.dev/icons?i=react&theme=light",
		"https://skillicons.dev/icons?i=vue&theme=light",
	}, urls)
}

func TestBadgeDimensions(t *testing.T) {
	t.Parallel()

	require.Equal(t, Dimensions{Width: 130, Height: 28, Spacing: 8, Shape: "rounded-md"}, BadgeDimensions(ServiceShields, "for-the-badge"))
	require.Equal(t, Dimensions{Width: 85, Height: 20, Spacing: 6, Shape: "rounded-none"}, BadgeDimensions(ServiceShields, "flat-square"))
	require.Equal(t, defaultDimensions, BadgeDimensions(ServiceShields, "unknown"))
	require.Equal(t, defaultDimensions, BadgeDimensions(ServiceShields, ""))
	require.Equal(t, defaultDimensions, BadgeDimensions(ServiceDevicon, "for-the-badge"))
	require.Equal(t, defaultDimensions, BadgeDimensions(ServiceSkillIcons, "dark"))
}

func TestServiceRegistry(t *testing.T) {
	t.Parallel()

	configs := Services()
	require.Len(t, configs, len(providers))
	for _, cfg := range configs {
		_, ok := providers[cfg.ID]
		require.True(t, ok, "service %s has no provider", cfg.ID)
	}

	service, ok := ParseService(" Shields ")
	require.True(t, ok)
	require.Equal(t, ServiceShields, service)

	service, ok = ParseService("fontawesome")
	require.False(t, ok)
	require.Equal(t, DefaultService, service)

	require.Equal(t, "Skill Icons", Config(Service("unknown")).Name)

	require.True(t, SupportsStyle(ServiceShields, "for-the-badge"))
	require.False(t, SupportsStyle(ServiceShields, "dark"))
	require.True(t, SupportsStyle(ServiceSkillIcons, "light"))
	require.False(t, SupportsStyle(ServiceSkillIcons, "flat"))
	require.True(t, SupportsStyle(ServiceDevicon, "anything"))
}
