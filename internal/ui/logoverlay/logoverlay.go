// Package logoverlay shows the in-memory log ring buffer inside the TUI.
package logoverlay

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/regdesk/internal/log"
	"github.com/zjrosen/regdesk/internal/ui/overlay"
	"github.com/zjrosen/regdesk/internal/ui/styles"
)

const (
	viewportMaxHeight = 20
	viewportMinHeight = 4
	boxMaxWidth       = 140
	boxMinWidth       = 40
	chromeHeight      = 6 // title, two dividers, footer, borders
)

// categories cycled by the "t" key. The empty category shows everything.
var categories = append([]log.Category{""}, log.Categories()...)

// levelKeys maps filter keys to the minimum level they select.
var levelKeys = []struct {
	key   string
	label string
	level log.Level
}{
	{"d", "Debug", log.LevelDebug},
	{"i", "Info", log.LevelInfo},
	{"w", "Warn", log.LevelWarn},
	{"e", "Error", log.LevelError},
}

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model is the log overlay state.
type Model struct {
	visible  bool
	minLevel log.Level
	category int
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden overlay sized for a width x height screen.
func New(width, height int) Model {
	return Model{minLevel: log.LevelDebug, width: width, height: height}
}

// Update handles keys while visible. Hidden overlays ignore everything.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	k := keyMsg.String()
	for _, lk := range levelKeys {
		if k == lk.key {
			m.minLevel = lk.level
			m.Refresh()
			return m, nil
		}
	}

	switch k {
	case "c":
		log.ClearBuffer()
		m.Refresh()
	case "t":
		m.category = (m.category + 1) % len(categories)
		m.Refresh()
	case "j", "down":
		m.viewport.ScrollDown(1)
	case "k", "up":
		m.viewport.ScrollUp(1)
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	case "ctrl+x", "esc":
		m.visible = false
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View renders the overlay box, or "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	width := m.boxWidth()
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", width))
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1).
		Render("Logs" + m.categoryLabel())

	body := strings.Join([]string{title, divider, m.viewport.View(), divider, m.footer()}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(body)
}

// Overlay renders the box centered on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible reports whether the overlay is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips visibility, refreshing the content when shown.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.Refresh()
	}
}

// Hide closes the overlay.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize records the screen size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.Refresh()
}

// Refresh reloads entries from the ring buffer, keeping the view pinned to
// the newest entry.
func (m *Model) Refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}
	contentWidth := m.boxWidth() - 2
	height := max(min(viewportMaxHeight, m.height-chromeHeight), viewportMinHeight)

	m.viewport = viewport.New(contentWidth, height)
	m.viewport.SetContent(m.content(contentWidth))
	m.viewport.GotoBottom()
}

func (m Model) content(width int) string {
	var lines []string
	for _, entry := range log.Recent(log.DefaultBufferSize) {
		if m.matches(entry) {
			lines = append(lines, colorize(entry, width))
		}
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true).
			Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

func (m Model) matches(entry log.Entry) bool {
	if cat := categories[m.category]; cat != "" && entry.Category != cat {
		return false
	}
	return entry.Level >= m.minLevel
}

var levelColors = map[log.Level]*lipgloss.AdaptiveColor{
	log.LevelDebug: &styles.TextMutedColor,
	log.LevelInfo:  &styles.ToastBorderInfoColor,
	log.LevelWarn:  &styles.StatusWarningColor,
	log.LevelError: &styles.StatusErrorColor,
}

func colorize(entry log.Entry, width int) string {
	line := entry.String()
	if ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width-3, "...")
	}
	color := lipgloss.TerminalColor(styles.TextPrimaryColor)
	if c, ok := levelColors[entry.Level]; ok {
		color = *c
	}
	return lipgloss.NewStyle().Foreground(color).Render(line)
}

func (m Model) categoryLabel() string {
	if cat := categories[m.category]; cat != "" {
		return fmt.Sprintf(" [%s]", cat)
	}
	return ""
}

func (m Model) footer() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{hint.Render("[c] Clear"), hint.Render("[t] Category")}
	for _, lk := range levelKeys {
		s := hint
		if lk.level == m.minLevel {
			s = active
		}
		parts = append(parts, s.Render(fmt.Sprintf("[%s] %s", lk.key, lk.label)))
	}
	return strings.Join(parts, "  ")
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}
