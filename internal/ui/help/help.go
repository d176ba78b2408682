// Package help renders the key reference overlay. The reference is built
// as markdown from the keymaps and rendered with glamour, so it always
// matches the active bindings.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/regdesk/internal/keys"
	"github.com/zjrosen/regdesk/internal/ui/markdown"
	"github.com/zjrosen/regdesk/internal/ui/overlay"
	"github.com/zjrosen/regdesk/internal/ui/styles"
)

const boxWidth = 64

// Model holds the rendered help text and the screen size.
type Model struct {
	content string
	width   int
	height  int
}

// New renders the key reference with the given glamour style. When the
// renderer fails the raw markdown is shown instead.
func New(style string) Model {
	doc := Document(keys.GroupTitles, keys.FullHelp())
	content := doc
	if r, err := markdown.New(boxWidth-4, style); err == nil {
		if out, err := r.Render(doc); err == nil {
			content = strings.TrimRight(out, "\n")
		}
	}
	return Model{content: content}
}

// Document builds the markdown source for the key reference.
func Document(titles []string, groups [][]key.Binding) string {
	var b strings.Builder
	for i, group := range groups {
		title := "Keys"
		if i < len(titles) {
			title = titles[i]
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		for _, binding := range group {
			h := binding.Help()
			fmt.Fprintf(&b, "- `%s` %s\n", h.Key, h.Desc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SetSize records the screen size used for centering.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box.
func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1).
		Render("Keyboard Shortcuts")
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))
	footer := styles.MutedStyle.Render("Press ? or esc to close")

	body := lipgloss.NewStyle().Padding(0, 1).Render(m.content + "\n\n" + footer)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(title + "\n" + divider + "\n" + body)
}

// Overlay renders the help box centered on bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}
