// Package textfield is a single-line text input drawn inside a titled form
// section.
package textfield

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/regdesk/internal/ui/styles"
)

// DefaultCharLimit caps names and emails.
const DefaultCharLimit = 120

// Model wraps a bubbles textinput.
type Model struct {
	input textinput.Model
	title string
	hint  string
	width int
}

// New creates a blurred field. An empty title renders the input without a
// box, for inline editing inside list rows.
func New(title, placeholder string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = DefaultCharLimit
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(styles.TextPlaceholderColor)
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	return Model{input: ti, title: title, width: 40}
}

// WithHint sets the text shown next to the title while focused.
func (m Model) WithHint(hint string) Model {
	m.hint = hint
	return m
}

// Value returns the raw, untrimmed text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the text and moves the cursor to the end.
func (m Model) SetValue(s string) Model {
	m.input.SetValue(s)
	m.input.CursorEnd()
	return m
}

// Focus gives the field keyboard focus.
func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.input.Focus()
	return m, cmd
}

// Blur removes keyboard focus.
func (m Model) Blur() Model {
	m.input.Blur()
	return m
}

// Focused reports whether the field has keyboard focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetWidth sets the outer width including the section border.
func (m Model) SetWidth(width int) Model {
	m.width = width
	inner := width - 4
	if m.title == "" {
		inner = width - 1
	}
	m.input.Width = max(inner, 4)
	return m
}

// Update forwards input to the textinput while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.input.Focused() {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the field.
func (m Model) View() string {
	if m.title == "" {
		return m.input.View()
	}
	hint := ""
	if m.input.Focused() {
		hint = m.hint
	}
	return styles.RenderFormSection([]string{" " + m.input.View()}, m.title, hint, m.width, m.input.Focused())
}
