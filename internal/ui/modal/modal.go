// Package modal provides the confirm/cancel dialog that gates every delete.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/regdesk/internal/ui/overlay"
	"github.com/zjrosen/regdesk/internal/ui/styles"
)

// ButtonVariant controls the styling of the confirm button.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonDanger
)

// Zone ids for mouse hit testing.
const (
	ZoneConfirm = "modal-confirm"
	ZoneCancel  = "modal-cancel"
)

const (
	minWidth = 40
	maxWidth = 64
)

// Config controls modal appearance.
type Config struct {
	Title          string
	Message        string
	Warning        string // Optional second paragraph shown in the warning color
	ConfirmLabel   string // Default "Confirm"
	ConfirmVariant ButtonVariant
}

// SubmitMsg is sent when the user confirms.
type SubmitMsg struct{}

// CancelMsg is sent when the user cancels.
type CancelMsg struct{}

// Field identifies which button is focused.
type Field int

const (
	FieldConfirm Field = iota
	FieldCancel
)

// Model is the modal component state.
type Model struct {
	config  Config
	focused Field
	width   int
	height  int
}

// New creates a modal with focus on the confirm button.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	return Model{config: cfg}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func submit() tea.Msg { return SubmitMsg{} }
func cancel() tea.Msg { return CancelMsg{} }

// Update handles messages for the modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "left", "right", "h", "l":
			m.focused = 1 - m.focused
		case "y":
			return m, submit
		case "n", "esc":
			return m, cancel
		case "enter", " ":
			if m.focused == FieldConfirm {
				return m, submit
			}
			return m, cancel
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if zone.Get(ZoneConfirm).InBounds(msg) {
			return m, submit
		}
		if zone.Get(ZoneCancel).InBounds(msg) {
			return m, cancel
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the modal box without placing it.
func (m Model) View() string {
	width := max(minWidth, lipgloss.Width(m.config.Title), min(lipgloss.Width(m.config.Message), maxWidth))
	boxWidth := width + 2

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1).
		Render(m.config.Title)
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	var body strings.Builder
	if m.config.Message != "" {
		body.WriteString(lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Width(width).Render(m.config.Message))
		body.WriteString("\n\n")
	}
	if m.config.Warning != "" {
		body.WriteString(styles.WarningStyle.Width(width).Render(m.config.Warning))
		body.WriteString("\n\n")
	}
	body.WriteString(m.renderButtons())

	content := title + "\n" + divider + "\n" + lipgloss.NewStyle().Padding(1, 1).Render(body.String())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(content)
}

func (m Model) renderButtons() string {
	confirm := styles.PrimaryButtonStyle
	if m.config.ConfirmVariant == ButtonDanger {
		confirm = styles.DangerButtonStyle
	}
	if m.focused == FieldConfirm {
		confirm = styles.PrimaryButtonFocusedStyle
		if m.config.ConfirmVariant == ButtonDanger {
			confirm = styles.DangerButtonFocusedStyle
		}
	}

	cancelStyle := styles.SecondaryButtonStyle
	if m.focused == FieldCancel {
		cancelStyle = styles.SecondaryButtonFocusedStyle
	}

	return zone.Mark(ZoneConfirm, confirm.Render(m.config.ConfirmLabel)) + "  " +
		zone.Mark(ZoneCancel, cancelStyle.Render("Cancel"))
}

// Overlay renders the modal centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// SetSize records the screen size used for centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focused returns the focused button.
func (m Model) Focused() Field {
	return m.focused
}
