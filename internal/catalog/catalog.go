package catalog

import (
	"regexp"
	"strings"

	"github.com/readmeforge/internal/icons"
)

var deviconSlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var (
	nativeTechnologies = cloneTechnologies(baseTechnologies)
	slugTechnologies   = buildSlugTechnologies()
)

// buildSlugTechnologies 合并基础与扩展列表（同名以基础列表为准），
// 再剔除已知无图标及 slug 不合法的技术。
func buildSlugTechnologies() []Technology {
	seen := make(map[string]struct{}, len(baseTechnologies)+len(extendedTechnologies))
	combined := make([]Technology, 0, len(baseTechnologies)+len(extendedTechnologies))
	for _, tech := range baseTechnologies {
		seen[tech.Name] = struct{}{}
		combined = append(combined, tech)
	}
	for _, tech := range extendedTechnologies {
		if _, dup := seen[tech.Name]; dup {
			continue
		}
		seen[tech.Name] = struct{}{}
		combined = append(combined, tech)
	}

	filtered := combined[:0]
	for _, tech := range combined {
		if _, denied := unsupportedSlugTechnologies[tech.Name]; denied {
			continue
		}
		if !deviconSlugPattern.MatchString(icons.DeviconSlug(tech.Name).Slug) {
			continue
		}
		filtered = append(filtered, tech)
	}
	return filtered
}

func registryFor(service icons.Service) []Technology {
	switch service {
	case icons.ServiceDevicon, icons.ServiceTechIcons, icons.ServiceShields:
		return slugTechnologies
	default:
		return nativeTechnologies
	}
}

// Available 返回指定图标服务可以渲染的技术列表，调用方可自由修改返回的切片。
func Available(service icons.Service) []Technology {
	return cloneTechnologies(registryFor(service))
}

// Count returns how many technologies the service can render.
func Count(service icons.Service) int {
	return len(registryFor(service))
}

// IsAvailable reports whether name is renderable by service.
func IsAvailable(name string, service icons.Service) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, tech := range registryFor(service) {
		if tech.Name == name {
			return true
		}
	}
	return false
}

// Categories returns the picker categories in display order.
func Categories() []Category {
	return append([]Category(nil), categories...)
}

// ByCategory 按分类分组可用技术，组内保持目录顺序。
func ByCategory(service icons.Service) map[string][]Technology {
	grouped := make(map[string][]Technology)
	for _, tech := range registryFor(service) {
		grouped[tech.Category] = append(grouped[tech.Category], tech)
	}
	return grouped
}

// CategoryCounts returns the number of available technologies per category.
func CategoryCounts(service icons.Service) map[string]int {
	counts := make(map[string]int)
	for _, tech := range registryFor(service) {
		counts[tech.Category]++
	}
	return counts
}

func cloneTechnologies(src []Technology) []Technology {
	return append([]Technology(nil), src...)
}
