package styles

// Preset is a complete named color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains the built-in themes by name.
var Presets = map[string]Preset{
	"default": DefaultPreset,
	"dracula": DraculaPreset,
	"nord":    NordPreset,
}

// DefaultPreset matches the package-level color defaults (dark values).
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default regdesk theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:            "#CCCCCC",
		TokenTextSecondary:          "#BBBBBB",
		TokenTextMuted:              "#696969",
		TokenTextPlaceholder:        "#777777",
		TokenBorderDefault:          "#696969",
		TokenBorderFocus:            "#FFFFFF",
		TokenBorderHighlight:        "#54A0FF",
		TokenStatusSuccess:          "#73F59F",
		TokenStatusWarning:          "#FECA57",
		TokenStatusError:            "#FF8787",
		TokenSelectionIndicator:     "#FFFFFF",
		TokenButtonText:             "#FFFFFF",
		TokenButtonPrimaryBg:        "#1A5276",
		TokenButtonPrimaryFocusBg:   "#3498DB",
		TokenButtonSecondaryBg:      "#2D3436",
		TokenButtonSecondaryFocusBg: "#636E72",
		TokenButtonDangerBg:         "#922B21",
		TokenButtonDangerFocusBg:    "#E74C3C",
		TokenFormBorder:             "#8C8C8C",
		TokenFormBorderFocus:        "#FFFFFF",
		TokenFormLabel:              "#8C8C8C",
		TokenFormLabelFocus:         "#FFFFFF",
		TokenOverlayTitle:           "#C9C9C9",
		TokenOverlayBorder:          "#8C8C8C",
		TokenToastSuccess:           "#73F59F",
		TokenToastError:             "#FF8787",
		TokenToastInfo:              "#54A0FF",
		TokenToastWarn:              "#FECA57",
		TokenHeaderTitle:            "#A29BFE",
		TokenTabActive:              "#A29BFE",
		TokenTabInactive:            "#8C8C8C",
	},
}

// DraculaPreset - dark theme with vibrant colors.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dracula - dark theme with vibrant colors",
	Colors: map[ColorToken]string{
		TokenTextPrimary:            "#F8F8F2", // foreground
		TokenTextSecondary:          "#F8F8F2", // foreground
		TokenTextMuted:              "#6272A4", // comment
		TokenTextPlaceholder:        "#6272A4", // comment
		TokenBorderDefault:          "#6272A4", // comment
		TokenBorderFocus:            "#F8F8F2", // foreground
		TokenBorderHighlight:        "#BD93F9", // purple
		TokenStatusSuccess:          "#50FA7B", // green
		TokenStatusWarning:          "#F1FA8C", // yellow
		TokenStatusError:            "#FF5555", // red
		TokenSelectionIndicator:     "#F8F8F2", // foreground
		TokenButtonText:             "#282A36", // background
		TokenButtonPrimaryBg:        "#BD93F9", // purple
		TokenButtonPrimaryFocusBg:   "#FF79C6", // pink
		TokenButtonSecondaryBg:      "#44475A", // current line
		TokenButtonSecondaryFocusBg: "#6272A4", // comment
		TokenButtonDangerBg:         "#FF5555", // red
		TokenButtonDangerFocusBg:    "#FF6E6E", // lighter red
		TokenFormBorder:             "#6272A4", // comment
		TokenFormBorderFocus:        "#F8F8F2", // foreground
		TokenFormLabel:              "#6272A4", // comment
		TokenFormLabelFocus:         "#F8F8F2", // foreground
		TokenOverlayTitle:           "#F8F8F2", // foreground
		TokenOverlayBorder:          "#6272A4", // comment
		TokenToastSuccess:           "#50FA7B", // green
		TokenToastError:             "#FF5555", // red
		TokenToastInfo:              "#8BE9FD", // cyan
		TokenToastWarn:              "#F1FA8C", // yellow
		TokenHeaderTitle:            "#BD93F9", // purple
		TokenTabActive:              "#FF79C6", // pink
		TokenTabInactive:            "#6272A4", // comment
	},
}

// NordPreset - arctic, north-bluish palette.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Nord - arctic, north-bluish palette",
	Colors: map[ColorToken]string{
		TokenTextPrimary:            "#ECEFF4", // snow storm 3
		TokenTextSecondary:          "#E5E9F0", // snow storm 2
		TokenTextMuted:              "#4C566A", // polar night 4
		TokenTextPlaceholder:        "#4C566A", // polar night 4
		TokenBorderDefault:          "#4C566A", // polar night 4
		TokenBorderFocus:            "#ECEFF4", // snow storm 3
		TokenBorderHighlight:        "#88C0D0", // frost 2
		TokenStatusSuccess:          "#A3BE8C", // aurora green
		TokenStatusWarning:          "#EBCB8B", // aurora yellow
		TokenStatusError:            "#BF616A", // aurora red
		TokenSelectionIndicator:     "#ECEFF4", // snow storm 3
		TokenButtonText:             "#2E3440", // polar night 1
		TokenButtonPrimaryBg:        "#5E81AC", // frost 4
		TokenButtonPrimaryFocusBg:   "#81A1C1", // frost 3
		TokenButtonSecondaryBg:      "#434C5E", // polar night 3
		TokenButtonSecondaryFocusBg: "#4C566A", // polar night 4
		TokenButtonDangerBg:         "#BF616A", // aurora red
		TokenButtonDangerFocusBg:    "#D08770", // aurora orange
		TokenFormBorder:             "#4C566A", // polar night 4
		TokenFormBorderFocus:        "#ECEFF4", // snow storm 3
		TokenFormLabel:              "#4C566A", // polar night 4
		TokenFormLabelFocus:         "#ECEFF4", // snow storm 3
		TokenOverlayTitle:           "#ECEFF4", // snow storm 3
		TokenOverlayBorder:          "#4C566A", // polar night 4
		TokenToastSuccess:           "#A3BE8C", // aurora green
		TokenToastError:             "#BF616A", // aurora red
		TokenToastInfo:              "#81A1C1", // frost 3
		TokenToastWarn:              "#EBCB8B", // aurora yellow
		TokenHeaderTitle:            "#88C0D0", // frost 2
		TokenTabActive:              "#88C0D0", // frost 2
		TokenTabInactive:            "#4C566A", // polar night 4
	},
}
