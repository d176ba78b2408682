package shared

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/regdesk/internal/store"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 3, 7, 10, 45, 0, 0, time.UTC)
	clock := FixedClock(at)
	require.Equal(t, at, clock.Now())
	require.Equal(t, at, clock.Now(), "repeated calls return the same instant")
}

func TestFixedClock_DrivesSequence(t *testing.T) {
	at := time.UnixMilli(5000)
	seq := store.NewSequence(FixedClock(at), 0)
	require.Equal(t, int64(5000), seq.Next())
	require.Equal(t, int64(5001), seq.Next(), "stalled clock still yields a fresh id")
}

func TestDeleteModal(t *testing.T) {
	m := DeleteModal("course type", 0, "course offering")
	m.SetSize(100, 30)
	view := ansi.Strip(m.View())
	require.Contains(t, view, "Are you sure you want to delete this course type?")
	require.NotContains(t, view, "Unknown")

	m = DeleteModal("course", 2, "course offering")
	m.SetSize(100, 30)
	view = ansi.Strip(m.View())
	require.Contains(t, view, "Are you sure you want to delete this course?")
	require.Contains(t, view, "2 course offering(s) still reference it")
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, cursor, size    int
		wantStart, wantEnd int
	}{
		{"empty", 0, 0, 5, 0, 0},
		{"fits", 3, 2, 5, 0, 3},
		{"top", 10, 0, 4, 0, 4},
		{"middle", 10, 5, 4, 3, 7},
		{"bottom", 10, 9, 4, 6, 10},
		{"no room", 10, 3, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Window(tt.n, tt.cursor, tt.size)
			require.Equal(t, tt.wantStart, start)
			require.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestWindow_CursorAlwaysVisible(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 200).Draw(rt, "n")
		cursor := rapid.IntRange(0, n-1).Draw(rt, "cursor")
		size := rapid.IntRange(1, 50).Draw(rt, "size")

		start, end := Window(n, cursor, size)
		if cursor < start || cursor >= end {
			rt.Fatalf("cursor %d outside [%d,%d)", cursor, start, end)
		}
		if end-start != min(n, size) {
			rt.Fatalf("window %d rows, want %d", end-start, min(n, size))
		}
	})
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, Clamp(3, 0))
	require.Equal(t, 0, Clamp(-1, 4))
	require.Equal(t, 3, Clamp(9, 4))
	require.Equal(t, 2, Clamp(2, 4))
}
