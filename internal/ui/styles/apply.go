package styles

import (
	"fmt"
	"maps"
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig selects a preset and overrides individual tokens.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ApplyTheme recolors every style. Colors start from the default preset,
// then the named preset, then the per-token overrides. An unknown preset,
// unknown token or malformed hex value leaves the current theme untouched.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	targets := colorTargets()
	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if _, ok := targets[token]; !ok {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !hexColor.MatchString(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	for token, hex := range colors {
		for _, target := range targets[token] {
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
	rebuildStyles()
	return nil
}

// colorTargets maps each token to the package colors it sets.
func colorTargets() map[ColorToken][]*lipgloss.AdaptiveColor {
	return map[ColorToken][]*lipgloss.AdaptiveColor{
		TokenTextPrimary:            {&TextPrimaryColor},
		TokenTextSecondary:          {&TextSecondaryColor},
		TokenTextMuted:              {&TextMutedColor},
		TokenTextPlaceholder:        {&TextPlaceholderColor},
		TokenBorderDefault:          {&BorderDefaultColor},
		TokenBorderFocus:            {&BorderFocusColor},
		TokenBorderHighlight:        {&BorderHighlightFocusColor},
		TokenStatusSuccess:          {&StatusSuccessColor},
		TokenStatusWarning:          {&StatusWarningColor},
		TokenStatusError:            {&StatusErrorColor},
		TokenSelectionIndicator:     {&SelectionIndicatorColor},
		TokenButtonText:             {&ButtonTextColor},
		TokenButtonPrimaryBg:        {&ButtonPrimaryBgColor},
		TokenButtonPrimaryFocusBg:   {&ButtonPrimaryFocusBgColor},
		TokenButtonSecondaryBg:      {&ButtonSecondaryBgColor},
		TokenButtonSecondaryFocusBg: {&ButtonSecondaryFocusBgColor},
		TokenButtonDangerBg:         {&ButtonDangerBgColor},
		TokenButtonDangerFocusBg:    {&ButtonDangerFocusBgColor},
		TokenFormBorder:             {&FormTextInputBorderColor},
		TokenFormBorderFocus:        {&FormTextInputFocusedBorderColor},
		TokenFormLabel:              {&FormTextInputLabelColor},
		TokenFormLabelFocus:         {&FormTextInputFocusedLabelColor},
		TokenOverlayTitle:           {&OverlayTitleColor},
		TokenOverlayBorder:          {&OverlayBorderColor},
		TokenToastSuccess:           {&ToastBorderSuccessColor},
		TokenToastError:             {&ToastBorderErrorColor},
		TokenToastInfo:              {&ToastBorderInfoColor},
		TokenToastWarn:              {&ToastBorderWarnColor},
		TokenHeaderTitle:            {&HeaderTitleColor},
		TokenTabActive:              {&TabActiveColor},
		TokenTabInactive:            {&TabInactiveColor},
	}
}

// IsValidToken reports whether key names a themeable color.
func IsValidToken(key string) bool {
	_, ok := colorTargets()[ColorToken(key)]
	return ok
}
