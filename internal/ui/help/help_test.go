package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	groups := [][]key.Binding{{
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	}}

	doc := Document([]string{"Lists"}, groups)
	require.Equal(t, "## Lists\n\n- `d` delete\n- `e` edit\n\n", doc)
}

func TestDocument_MissingTitle(t *testing.T) {
	doc := Document(nil, [][]key.Binding{{key.NewBinding(key.WithHelp("q", "quit"))}})
	require.True(t, strings.HasPrefix(doc, "## Keys\n"))
}

func TestView(t *testing.T) {
	m := New("notty").SetSize(100, 40)
	view := ansi.Strip(m.View())

	require.Contains(t, view, "Keyboard Shortcuts")
	require.Contains(t, view, "Tabs")
	require.Contains(t, view, "next tab")
	require.Contains(t, view, "delete")
	require.Contains(t, view, "Press ? or esc to close")

	out := ansi.Strip(m.Overlay(""))
	require.Contains(t, out, "Keyboard Shortcuts")
}
