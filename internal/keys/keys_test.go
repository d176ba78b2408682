package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFullHelp_GroupsMatchTitles(t *testing.T) {
	groups := FullHelp()
	require.Len(t, groups, len(GroupTitles))
	for i, group := range groups {
		require.NotEmpty(t, group, "group %s", GroupTitles[i])
		for _, b := range group {
			require.NotEmpty(t, b.Help().Key)
			require.NotEmpty(t, b.Help().Desc)
		}
	}
}

func TestBindings_Match(t *testing.T) {
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlN}, App.NextTab))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, App.ForceQuit))
	require.True(t, key.Matches(runes("3"), App.Tab3))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, List.Edit))
	require.True(t, key.Matches(runes("d"), List.Delete))
	require.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, Form.Leave))
	require.False(t, key.Matches(runes("e"), List.Delete))
}

func TestShortHelp(t *testing.T) {
	require.Len(t, List.ShortHelp(), 5)
	require.Len(t, Form.ShortHelp(), 3)
}
