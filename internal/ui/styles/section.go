package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderFormSection draws content inside a rounded box whose top edge
// carries the title: ╭─ Title (hint) ───╮. Focused sections use the focus
// border color. Form fields and the confirm modal both use it.
func RenderFormSection(content []string, title, hint string, width int, focused bool) string {
	var color lipgloss.TerminalColor = FormTextInputBorderColor
	var labelColor lipgloss.TerminalColor = FormTextInputLabelColor
	if focused {
		color = FormTextInputFocusedBorderColor
		labelColor = FormTextInputFocusedLabelColor
	}
	border := lipgloss.NewStyle().Foreground(color)
	label := lipgloss.NewStyle().Bold(true).Foreground(labelColor)

	inner := max(width-2, 1)

	top := borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight
	if title != "" {
		heading := label.Render(title)
		used := lipgloss.Width(title)
		if hint != "" {
			heading += " " + MutedStyle.Render("("+hint+")")
			used += lipgloss.Width(hint) + 3
		}
		rest := max(inner-used-3, 0)
		top = border.Render(borderTopLeft+borderHorizontal+" ") + heading +
			border.Render(" "+strings.Repeat(borderHorizontal, rest)+borderTopRight)
	} else {
		top = border.Render(top)
	}

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, top)
	for _, row := range content {
		pad := max(inner-lipgloss.Width(row), 0)
		lines = append(lines, border.Render(borderVertical)+row+strings.Repeat(" ", pad)+border.Render(borderVertical))
	}
	lines = append(lines, border.Render(borderBottomLeft+strings.Repeat(borderHorizontal, inner)+borderBottomRight))
	return strings.Join(lines, "\n")
}
