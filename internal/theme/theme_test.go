package theme

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContributionThemeKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stats    string
		expected string
	}{
		{stats: "dracula", expected: "dracula"},
		{stats: "dark", expected: "github_dark"},
		{stats: "tokyonight", expected: "tokyo_night"},
		{stats: "blue", expected: "blueberry"},
		{stats: "github_light", expected: "github"},
		{stats: "catppuccin", expected: "catppuccin_latte"},
		{stats: "vue-dark", expected: "vue_dark"},
	}

	for _, tt := range tests {
		t.Run(tt.stats, func(t *testing.T) {
			require.Equal(t, tt.expected, ContributionTheme(tt.stats))
		})
	}
}

func TestContributionThemeFallsBackForUnknownInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, DefaultContributionTheme, ContributionTheme(""))
	require.Equal(t, DefaultContributionTheme, ContributionTheme("DRACULA"))

	rng := rand.New(rand.NewSource(42))
	const alphabet = "abcdefghijklmnopqrstuvwxyz_-0123456789 ÄÖ"
	runes := []rune(alphabet)
	checked := 0
	for checked < 1000 {
		length := rng.Intn(24)
		buf := make([]rune, length)
		for i := range buf {
			buf[i] = runes[rng.Intn(len(runes))]
		}
		candidate := string(buf)
		if IsValid(candidate) {
			continue
		}
		require.Equal(t, DefaultContributionTheme, ContributionTheme(candidate), "input %q", candidate)
		checked++
	}
}

func TestStatsThemesAreClosedAndMapped(t *testing.T) {
	t.Parallel()

	themes := StatsThemes()
	require.Len(t, themes, 49)
	require.Equal(t, "dracula", themes[0])

	seen := make(map[string]struct{}, len(themes))
	for _, name := range themes {
		_, dup := seen[name]
		require.False(t, dup, "duplicate theme %s", name)
		seen[name] = struct{}{}
		require.True(t, IsValid(name))
		require.NotEmpty(t, ContributionTheme(name))
	}
	require.True(t, IsValid(DefaultStatsTheme))
}

func TestDisplayNameAndOptions(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Vue Dark", DisplayName("vue-dark"))
	require.Equal(t, "Github_dark", DisplayName("github_dark"))
	require.Equal(t, "", DisplayName(""))

	options := Options()
	require.Len(t, options, len(StatsThemes()))
	require.Equal(t, Option{Value: "vision-friendly-dark", Label: "Vision Friendly Dark"}, options[16])
}
