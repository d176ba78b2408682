// Package styles contains the Lip Gloss colors and styles shared by every
// regdesk view, plus the theme machinery that recolors them.
package styles

// ColorToken is the config key for one themeable color.
type ColorToken string

const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderFocus     ColorToken = "border.focus"
	TokenBorderHighlight ColorToken = "border.highlight"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	TokenSelectionIndicator ColorToken = "selection.indicator"

	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"
	TokenButtonDangerBg         ColorToken = "button.danger.bg"
	TokenButtonDangerFocusBg    ColorToken = "button.danger.focus"

	TokenFormBorder      ColorToken = "form.border"
	TokenFormBorderFocus ColorToken = "form.border.focus" //nolint:gosec // UI color token, not credentials
	TokenFormLabel       ColorToken = "form.label"
	TokenFormLabelFocus  ColorToken = "form.label.focus"

	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	TokenHeaderTitle ColorToken = "header.title"
	TokenTabActive   ColorToken = "tab.active"
	TokenTabInactive ColorToken = "tab.inactive"
)

// AllTokens lists every token in a stable order.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary, TokenTextSecondary, TokenTextMuted, TokenTextPlaceholder,
		TokenBorderDefault, TokenBorderFocus, TokenBorderHighlight,
		TokenStatusSuccess, TokenStatusWarning, TokenStatusError,
		TokenSelectionIndicator,
		TokenButtonText, TokenButtonPrimaryBg, TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg, TokenButtonSecondaryFocusBg,
		TokenButtonDangerBg, TokenButtonDangerFocusBg,
		TokenFormBorder, TokenFormBorderFocus, TokenFormLabel, TokenFormLabelFocus,
		TokenOverlayTitle, TokenOverlayBorder,
		TokenToastSuccess, TokenToastError, TokenToastInfo, TokenToastWarn,
		TokenHeaderTitle, TokenTabActive, TokenTabInactive,
	}
}
