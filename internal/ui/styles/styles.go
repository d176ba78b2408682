package styles

import "github.com/charmbracelet/lipgloss"

var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#777777"}

	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#696969"}
	BorderFocusColor          = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#E1A700", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D63031", Dark: "#FF8787"}

	// Used for the ">" cursor in lists
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDangerBgColor         = lipgloss.AdaptiveColor{Light: "#922B21", Dark: "#922B21"}
	ButtonDangerFocusBgColor    = lipgloss.AdaptiveColor{Light: "#E74C3C", Dark: "#E74C3C"}

	FormTextInputBorderColor        = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#8C8C8C"}
	FormTextInputFocusedBorderColor = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}
	FormTextInputLabelColor         = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#8C8C8C"}
	FormTextInputFocusedLabelColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}

	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#BBBBBB", Dark: "#8C8C8C"}

	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderErrorColor   = lipgloss.AdaptiveColor{Light: "#D63031", Dark: "#FF8787"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}
	ToastBorderWarnColor    = lipgloss.AdaptiveColor{Light: "#E1A700", Dark: "#FECA57"}

	HeaderTitleColor = lipgloss.AdaptiveColor{Light: "#4834D4", Dark: "#A29BFE"}
	TabActiveColor   = lipgloss.AdaptiveColor{Light: "#4834D4", Dark: "#A29BFE"}
	TabInactiveColor = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#8C8C8C"}
)

// Styles derived from the colors above. rebuildStyles recreates them after
// a theme changes the colors.
var (
	SelectionIndicatorStyle lipgloss.Style

	PrimaryButtonStyle          lipgloss.Style
	PrimaryButtonFocusedStyle   lipgloss.Style
	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style
	DangerButtonStyle           lipgloss.Style
	DangerButtonFocusedStyle    lipgloss.Style

	HeaderTitleStyle  lipgloss.Style
	SubtitleStyle     lipgloss.Style
	SectionTitleStyle lipgloss.Style
	MutedStyle        lipgloss.Style
	SecondaryStyle    lipgloss.Style
	ErrorStyle        lipgloss.Style
	WarningStyle      lipgloss.Style

	TabActiveStyle   lipgloss.Style
	TabInactiveStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	base := lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(ButtonTextColor)
	focused := func(bg lipgloss.AdaptiveColor) lipgloss.Style {
		return base.Background(bg).Underline(true).UnderlineSpaces(true)
	}
	PrimaryButtonStyle = base.Background(ButtonPrimaryBgColor)
	PrimaryButtonFocusedStyle = focused(ButtonPrimaryFocusBgColor)
	SecondaryButtonStyle = base.Background(ButtonSecondaryBgColor)
	SecondaryButtonFocusedStyle = focused(ButtonSecondaryFocusBgColor)
	DangerButtonStyle = base.Background(ButtonDangerBgColor)
	DangerButtonFocusedStyle = focused(ButtonDangerFocusBgColor)

	HeaderTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(HeaderTitleColor)
	SubtitleStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	SecondaryStyle = lipgloss.NewStyle().Foreground(TextSecondaryColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)

	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TabActiveColor).
		Underline(true).
		Padding(0, 1)
	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(TabInactiveColor).
		Padding(0, 1)
}
