// Package toaster shows a short-lived notification at the bottom of the
// screen after a change is committed.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/regdesk/internal/ui/overlay"
	"github.com/zjrosen/regdesk/internal/ui/styles"
)

// Style determines the border color and icon of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Model holds the toaster state. Each Show gets a new sequence number so a
// dismiss timer from an older toast cannot hide a newer one.
type Model struct {
	message string
	style   Style
	visible bool
	seq     int
	width   int
	height  int
}

// New creates a hidden toaster.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that will dismiss it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	m.visible = true
	return m, ScheduleDismiss(m.seq, d)
}

// Hide dismisses the toast immediately.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Dismiss hides the toast if msg belongs to the one currently showing.
func (m Model) Dismiss(msg DismissMsg) Model {
	if msg.Seq != m.seq {
		return m
	}
	return m.Hide()
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the current toast.
func (m Model) Message() string {
	return m.message
}

// SetSize updates the screen dimensions used for placement.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	box := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		box = box.BorderForeground(styles.ToastBorderErrorColor)
		icon = "❌"
	case StyleInfo:
		box = box.BorderForeground(styles.ToastBorderInfoColor)
		icon = "ℹ️"
	case StyleWarn:
		box = box.BorderForeground(styles.ToastBorderWarnColor)
		icon = "⚠️"
	default:
		box = box.BorderForeground(styles.ToastBorderSuccessColor)
		icon = "✅"
	}
	return box.Render(icon + " " + m.message)
}

// Overlay draws the toast bottom-center over bg.
func (m Model) Overlay(bg string) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Bottom,
		PadY:     1,
	}, m.View(), bg)
}

// DismissMsg asks the toaster to hide toast number Seq.
type DismissMsg struct {
	Seq int
}

// ScheduleDismiss returns a command that sends DismissMsg{seq} after d.
func ScheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}
