package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func screen(w, h int, fill string) string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(fill, w)
	}
	return strings.Join(rows, "\n")
}

func TestPlace_Center(t *testing.T) {
	out := Place(Config{Width: 10, Height: 5}, "AB\nCD", screen(10, 5, "."))
	rows := strings.Split(out, "\n")

	require.Len(t, rows, 5)
	require.Equal(t, "..........", rows[0])
	require.Equal(t, "....AB....", rows[1])
	require.Equal(t, "....CD....", rows[2])
	require.Equal(t, "..........", rows[3])
}

func TestPlace_TopAndBottom(t *testing.T) {
	bg := screen(6, 4, ".")

	top := strings.Split(Place(Config{Width: 6, Height: 4, Position: Top, PadY: 1}, "XX", bg), "\n")
	require.Equal(t, "..XX..", top[1])

	bottom := strings.Split(Place(Config{Width: 6, Height: 4, Position: Bottom}, "XX", bg), "\n")
	require.Equal(t, "..XX..", bottom[3])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	out := Place(Config{Width: 4, Height: 3, Position: Bottom}, "ok", "ab")
	rows := strings.Split(out, "\n")

	require.Len(t, rows, 3)
	require.Equal(t, "ab", rows[0])
	require.Equal(t, " ok ", rows[2])
}

func TestPlace_PreservesStyledBackground(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("abcdefgh")
	out := Place(Config{Width: 8, Height: 1}, "XY", styled)

	require.Equal(t, "abcXYfgh", ansi.Strip(out))
}

func TestPlace_OversizedBoxClampsToOrigin(t *testing.T) {
	out := Place(Config{Width: 2, Height: 1}, "wide", "..")
	require.Equal(t, "wide", ansi.Strip(out))
}
