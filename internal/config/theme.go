package config

import "github.com/zjrosen/regdesk/internal/ui/styles"

// Styles converts the theme section for styles.ApplyTheme.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{
		Preset: t.Preset,
		Colors: t.FlattenedColors(),
	}
}
