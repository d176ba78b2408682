package registrations

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/regdesk/internal/config"
	"github.com/zjrosen/regdesk/internal/domain"
	"github.com/zjrosen/regdesk/internal/mode"
	"github.com/zjrosen/regdesk/internal/mode/shared"
	"github.com/zjrosen/regdesk/internal/store"
	"github.com/zjrosen/regdesk/internal/ui/modal"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	zone.NewGlobal()
	os.Exit(m.Run())
}

type counter struct{ n int64 }

func (c *counter) Next() int64 {
	c.n++
	return 1000 + c.n
}

var registeredAt = time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)

func seeded(t *testing.T) store.State {
	t.Helper()
	s, err := store.Seeded(store.DefaultSeed())
	require.NoError(t, err)
	return s
}

func newTab(t *testing.T, state store.State) mode.Controller {
	t.Helper()
	cfg := config.Defaults()
	svc := mode.Services{Config: &cfg, IDs: &counter{}, Clock: shared.FixedClock(registeredAt)}
	return New(svc, state).SetSize(100, 40)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(c mode.Controller, ks ...string) (mode.Controller, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range ks {
		c, cmd = c.Update(keyMsg(k))
	}
	return c, cmd
}

func typeText(c mode.Controller, s string) mode.Controller {
	for _, r := range s {
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return c
}

// fill enters name and email and selects the n-th offering choice.
func fill(c mode.Controller, name, email string, n int) mode.Controller {
	c, _ = press(c, "a")
	c = typeText(c, name)
	c, _ = press(c, "tab")
	c = typeText(c, email)
	c, _ = press(c, "tab", "tab")
	for range n {
		c, _ = press(c, "right")
	}
	return c
}

// commitOf takes the change c posted during its last Update.
func commitOf(t *testing.T, c mode.Controller) (mode.Controller, mode.Commit) {
	t.Helper()
	c, change := c.TakeCommit()
	require.NotNil(t, change, "expected a posted change")
	return c, *change
}

func stateOf(c mode.Controller) Model {
	return c.(Model)
}

func TestCreate(t *testing.T) {
	state := seeded(t)
	c := fill(newTab(t, state), "Asha Rao", "asha@example.com", 1)
	require.Equal(t, domain.OfferingID(1), stateOf(c).State().OfferingID)

	c, _ = press(c, "enter")
	c, msg := commitOf(t, c)
	require.Equal(t, "Student registered", msg.Toast)

	next := state.Apply(msg.Change)
	require.Equal(t, []domain.Registration{{
		ID:           1001,
		StudentName:  "Asha Rao",
		StudentEmail: "asha@example.com",
		OfferingID:   1,
		RegisteredAt: "3/5/2024",
	}}, next.Registrations)

	st := stateOf(c).State()
	require.Empty(t, st.StudentName)
	require.Empty(t, st.StudentEmail)
	require.Zero(t, st.OfferingID)
	require.Empty(t, st.Err)
}

func TestCreate_UsesConfiguredDateLayout(t *testing.T) {
	state := seeded(t)
	cfg := config.Defaults()
	cfg.UI.DateFormat = "2006-01-02"
	svc := mode.Services{Config: &cfg, IDs: &counter{}, Clock: shared.FixedClock(registeredAt)}

	c := fill(New(svc, state).SetSize(100, 40), "Asha", "asha@example.com", 1)
	c, _ = press(c, "enter")

	_, msg := commitOf(t, c)
	next := state.Apply(msg.Change)
	require.Equal(t, "2024-03-05", next.Registrations[0].RegisteredAt)
}

func TestCreate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		student string
		email   string
		pick    int
		rule    domain.Rule
		message string
	}{
		{"missing name", "", "asha@example.com", 1, domain.RuleIncompleteFields, "Please fill in all fields"},
		{"missing offering", "Asha", "asha@example.com", 0, domain.RuleIncompleteFields, "Please fill in all fields"},
		{"no at sign", "Asha", "asha.example.com", 1, domain.RuleEmailShape, "Please enter a valid email address"},
		{"no dot after at", "Asha", "asha@example", 1, domain.RuleEmailShape, "Please enter a valid email address"},
		{"leading space", "Asha", " asha@example.com", 1, domain.RuleEmailShape, "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fill(newTab(t, seeded(t)), tt.student, tt.email, tt.pick)
			c, cmd := press(c, "enter")

			require.NotNil(t, cmd)
			require.Equal(t, mode.RejectedMsg{Collection: store.Registrations, Rule: tt.rule}, cmd())
			require.Contains(t, ansi.Strip(c.View()), tt.message)
			require.Equal(t, tt.student, stateOf(c).State().StudentName, "input kept after rejection")
		})
	}
}

func TestFilter_RestrictsOfferings(t *testing.T) {
	c := newTab(t, seeded(t))

	// Filter to Group: only "Group - Hindi" remains.
	c, _ = press(c, "a", "tab", "tab", "right", "right")
	require.Equal(t, domain.CourseTypeID(2), stateOf(c).State().FilterType)

	c, _ = press(c, "tab", "right")
	require.Equal(t, domain.OfferingID(2), stateOf(c).State().OfferingID)
	opts := stateOf(c).offering.Options()
	require.Len(t, opts, 1)
	require.Equal(t, "Group - Hindi", opts[0].Label)

	// Switching the filter to Special hides the selected offering.
	c, _ = press(c, "shift+tab", "right")
	require.Equal(t, domain.CourseTypeID(3), stateOf(c).State().FilterType)
	require.Zero(t, stateOf(c).State().OfferingID)
	require.Empty(t, stateOf(c).offering.Options())
}

func TestGroupedView(t *testing.T) {
	state := seeded(t)
	c := newTab(t, state)

	c = fill(c, "Asha Rao", "asha@example.com", 1)
	c, _ = press(c, "enter")
	c, msg := commitOf(t, c)
	state = state.Apply(msg.Change)
	c = c.SetState(state)

	v := ansi.Strip(c.View())
	assert.Contains(t, v, "Registered Students (1)")
	assert.Contains(t, v, "Individual - English (1 students)")
	assert.Contains(t, v, "Asha Rao  asha@example.com  Registered: 3/5/2024")

	c, _ = press(c, "esc")
	c = fill(c, "Ben", "ben@example.com", 1)
	c, _ = press(c, "enter")
	c, msg = commitOf(t, c)
	state = state.Apply(msg.Change)
	c = c.SetState(state)

	v = ansi.Strip(c.View())
	assert.Contains(t, v, "Registered Students (2)")
	assert.Contains(t, v, "Individual - English (2 students)")
	assert.NotContains(t, v, "(1 students)")
}

func TestView_Empty(t *testing.T) {
	v := ansi.Strip(newTab(t, seeded(t)).View())
	assert.Contains(t, v, "Student Name")
	assert.Contains(t, v, "Enter student email")
	assert.Contains(t, v, "All Types")
	assert.Contains(t, v, "Choose an offering...")
	assert.Contains(t, v, "Registered Students (0)")
	assert.Contains(t, v, "No student registrations yet. Register students above!")
}

func TestView_OrphanedRegistrations(t *testing.T) {
	state := seeded(t)
	state.Registrations = []domain.Registration{
		{ID: 1, StudentName: "Asha", StudentEmail: "a@x.io", OfferingID: 1, RegisteredAt: "1/1/2024"},
		{ID: 2, StudentName: "Ben", StudentEmail: "b@x.io", OfferingID: 99, RegisteredAt: "1/1/2024"},
	}
	v := ansi.Strip(newTab(t, state).View())

	assert.Contains(t, v, "Registered Students (2)")
	assert.Contains(t, v, "Individual - English (1 students)")
	assert.NotContains(t, v, "Ben")
	assert.Contains(t, v, "1 registration(s) reference removed offerings")
}

func TestDelete(t *testing.T) {
	state := seeded(t)
	state.Registrations = []domain.Registration{
		{ID: 1, StudentName: "Asha", StudentEmail: "a@x.io", OfferingID: 2, RegisteredAt: "1/1/2024"},
		{ID: 2, StudentName: "Ben", StudentEmail: "b@x.io", OfferingID: 1, RegisteredAt: "1/1/2024"},
	}
	c := newTab(t, state)

	// Groups follow offering order, so Ben (offering 1) is listed first.
	c, _ = press(c, "d")
	require.Equal(t, domain.RegistrationID(2), stateOf(c).State().PendingDelete)
	require.Equal(t, mode.CaptureModal, c.Capture())
	require.Contains(t, ansi.Strip(c.View()), "Are you sure you want to delete this registration?")

	c, _ = c.Update(modal.SubmitMsg{})
	c, msg := commitOf(t, c)
	require.Equal(t, "Registration deleted", msg.Toast)
	next := state.Apply(msg.Change)
	require.Len(t, next.Registrations, 1)
	require.Equal(t, "Asha", next.Registrations[0].StudentName)
	require.Equal(t, mode.CaptureNone, c.Capture())
}

func TestDelete_Cancel(t *testing.T) {
	state := seeded(t)
	state.Registrations = []domain.Registration{
		{ID: 1, StudentName: "Asha", StudentEmail: "a@x.io", OfferingID: 1, RegisteredAt: "1/1/2024"},
	}
	c := newTab(t, state)

	c, _ = press(c, "d", "n")
	c, cmd := c.Update(modal.CancelMsg{})
	require.Nil(t, cmd)
	require.Zero(t, stateOf(c).State().PendingDelete)
	require.Equal(t, mode.CaptureNone, c.Capture())
}

func TestCapture(t *testing.T) {
	c := newTab(t, seeded(t))
	require.Equal(t, mode.CaptureNone, c.Capture())

	c, _ = press(c, "a")
	require.Equal(t, mode.CaptureText, c.Capture())

	c, _ = press(c, "esc")
	require.Equal(t, mode.CaptureNone, c.Capture())
}
