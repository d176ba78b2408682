// Package picker provides an inline single-choice field. It renders as a
// bordered form field showing the current choice, and cycles through its
// options with the arrow keys. The first position is always the
// placeholder, which means "nothing selected".
package picker

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/regdesk/internal/ui/styles"
)

// Option is one choice. Value must not be zero; zero is reserved for the
// placeholder.
type Option struct {
	Label string
	Value int64
}

// Model holds the picker state.
type Model struct {
	title       string
	placeholder string
	options     []Option
	selected    int // -1 is the placeholder
	focused     bool
	width       int
}

// New creates an empty picker.
func New(title, placeholder string) Model {
	return Model{
		title:       title,
		placeholder: placeholder,
		selected:    -1,
		width:       30,
	}
}

// SetOptions replaces the option list. The current choice survives when
// its value is still offered and falls back to the placeholder otherwise.
func (m Model) SetOptions(options []Option) Model {
	current := m.Value()
	m.options = options
	m.selected = FindIndexByValue(options, current)
	return m
}

// Select chooses the option with value, or the placeholder for zero or an
// unknown value.
func (m Model) Select(value int64) Model {
	m.selected = FindIndexByValue(m.options, value)
	return m
}

// Value returns the chosen value, or zero for the placeholder.
func (m Model) Value() int64 {
	if m.selected < 0 || m.selected >= len(m.options) {
		return 0
	}
	return m.options[m.selected].Value
}

// Label returns the chosen label, or the placeholder.
func (m Model) Label() string {
	if m.selected < 0 || m.selected >= len(m.options) {
		return m.placeholder
	}
	return m.options[m.selected].Label
}

// Options returns the current option list.
func (m Model) Options() []Option {
	return m.options
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool {
	return m.focused
}

// SetWidth sets the rendered width including the border.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// Update cycles the choice while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "right", "l", "down", "j", " ":
			m.selected = m.step(1)
		case "left", "h", "up", "k":
			m.selected = m.step(-1)
		case "home", "g":
			m.selected = -1
		}
	}
	return m, nil
}

// step moves through placeholder, option 0 .. option n-1, wrapping.
func (m Model) step(delta int) int {
	n := len(m.options) + 1
	pos := (m.selected + 1 + delta + n) % n
	return pos - 1
}

// View renders the field.
func (m Model) View() string {
	inner := max(m.width-2, 4)
	arrows := 4 // "‹ " and " ›"

	label := runewidth.Truncate(m.Label(), inner-arrows, "…")
	var text string
	if m.selected < 0 {
		text = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor).Render(label)
	} else {
		text = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(label)
	}

	var line string
	if m.focused {
		line = styles.SelectionIndicatorStyle.Render("‹ ") + text + styles.SelectionIndicatorStyle.Render(" ›")
	} else {
		line = "  " + text
	}

	hint := ""
	if m.focused {
		hint = "←/→"
	}
	return styles.RenderFormSection([]string{line}, m.title, hint, m.width, m.focused)
}

// FindIndexByValue returns the index of the option with value, or -1.
func FindIndexByValue(options []Option, value int64) int {
	if value == 0 {
		return -1
	}
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}
