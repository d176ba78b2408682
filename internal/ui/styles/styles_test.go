package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { require.NoError(t, ApplyTheme(ThemeConfig{})) })
}

func TestApplyTheme_Preset(t *testing.T) {
	resetTheme(t)

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "nord"}))
	require.Equal(t, lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"}, StatusErrorColor)
}

func TestApplyTheme_Overrides(t *testing.T) {
	resetTheme(t)

	err := ApplyTheme(ThemeConfig{
		Preset: "dracula",
		Colors: map[string]string{"status.error": "#123456", "tab.active": "#abc"},
	})
	require.NoError(t, err)
	require.Equal(t, "#123456", StatusErrorColor.Dark)
	require.Equal(t, "#abc", TabActiveColor.Dark)
	require.Equal(t, "#50FA7B", StatusSuccessColor.Dark, "preset still applies to other tokens")
}

func TestApplyTheme_Rejects(t *testing.T) {
	resetTheme(t)
	before := StatusErrorColor

	tests := []struct {
		name string
		cfg  ThemeConfig
		want string
	}{
		{"unknown preset", ThemeConfig{Preset: "solarized"}, "unknown theme preset"},
		{"unknown token", ThemeConfig{Colors: map[string]string{"row.cursor": "#fff"}}, "unknown color token"},
		{"bad hex", ThemeConfig{Colors: map[string]string{"status.error": "red"}}, "invalid hex color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyTheme(tt.cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
			require.Equal(t, before, StatusErrorColor)
		})
	}
}

func TestEveryTokenHasTargetAndDefault(t *testing.T) {
	targets := colorTargets()
	for _, token := range AllTokens() {
		require.Contains(t, targets, token)
		require.True(t, IsValidToken(string(token)))
		for name, preset := range Presets {
			require.Contains(t, preset.Colors, token, "preset %s", name)
		}
	}
	require.Len(t, targets, len(AllTokens()))
}

func TestRenderFormSection(t *testing.T) {
	out := ansi.Strip(RenderFormSection([]string{"Hindi"}, "Name", "enter to save", 30, true))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "╭─ Name (enter to save) "))
	require.True(t, strings.HasSuffix(lines[0], "╮"))
	require.Equal(t, "│Hindi"+strings.Repeat(" ", 23)+"│", lines[1])
	for _, line := range lines {
		require.Equal(t, 30, ansi.StringWidth(line))
	}
}
