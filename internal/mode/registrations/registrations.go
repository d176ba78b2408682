// Package registrations implements the Registrations tab: a sign-up form
// and the list of students grouped by the offering they registered for.
package registrations

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/regdesk/internal/domain"
	"github.com/zjrosen/regdesk/internal/keys"
	"github.com/zjrosen/regdesk/internal/manager"
	"github.com/zjrosen/regdesk/internal/mode"
	"github.com/zjrosen/regdesk/internal/mode/shared"
	"github.com/zjrosen/regdesk/internal/store"
	"github.com/zjrosen/regdesk/internal/ui/modal"
	"github.com/zjrosen/regdesk/internal/ui/picker"
	"github.com/zjrosen/regdesk/internal/ui/styles"
	"github.com/zjrosen/regdesk/internal/ui/textfield"
)

// chrome is the line count above the list: two rows of form boxes (6),
// the error line and the title.
const chrome = 8

// field is the focused part of the screen, in tab order.
type field int

const (
	fieldList field = iota
	fieldName
	fieldEmail
	fieldFilter
	fieldOffering
)

func zoneField(f field) string                   { return fmt.Sprintf("registrations:field:%d", f) }
func zoneRow(id domain.RegistrationID) string    { return fmt.Sprintf("registrations:row:%d", id) }
func zoneDelete(id domain.RegistrationID) string { return fmt.Sprintf("registrations:delete:%d", id) }

// Model is the Registrations screen.
type Model struct {
	services mode.Services
	manager  manager.RegistrationManager

	state store.State
	st    manager.RegistrationState

	name     textfield.Model
	email    textfield.Model
	filter   picker.Model
	offering picker.Model

	cursor  int
	focus   field
	confirm *modal.Model
	out     mode.Outbox

	width  int
	height int
}

// New creates the Registrations tab.
func New(services mode.Services, state store.State) mode.Controller {
	m := Model{
		services: services,
		manager:  manager.RegistrationManager{DateLayout: services.DateLayout()},
		name:     textfield.New("Student Name", "Enter student name"),
		email:    textfield.New("Student Email", "Enter student email"),
		filter:   picker.New("Filter by Course Type", "All Types"),
		offering: picker.New("Select Course Offering", "Choose an offering..."),
	}
	return m.setState(state)
}

// State exposes the uncommitted state.
func (m Model) State() manager.RegistrationState {
	return m.st
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// TakeCommit implements mode.Controller.
func (m Model) TakeCommit() (mode.Controller, *mode.Commit) {
	var c *mode.Commit
	m.out, c = m.out.Take()
	return m, c
}

// SetState implements mode.Controller. The date layout is re-read so a
// config reload takes effect on the next registration.
func (m Model) SetState(state store.State) mode.Controller {
	m.manager.DateLayout = m.services.DateLayout()
	return m.setState(state)
}

func (m Model) setState(state store.State) Model {
	m.state = state

	types := make([]picker.Option, 0, len(state.CourseTypes))
	for _, t := range state.CourseTypes {
		types = append(types, picker.Option{Label: t.Name, Value: int64(t.ID)})
	}
	m.filter = m.filter.SetOptions(types)
	m.st = m.manager.SetFilter(state.Offerings, m.st, domain.CourseTypeID(m.filter.Value()))

	m = m.refreshOfferings()
	m.cursor = shared.Clamp(m.cursor, len(m.entries()))
	return m
}

// refreshOfferings rebuilds the offering choices for the current filter and
// drops a selection that is no longer offered.
func (m Model) refreshOfferings() Model {
	visible := manager.FilteredOfferings(m.state.Offerings, m.st.FilterType)
	options := make([]picker.Option, 0, len(visible))
	for _, o := range visible {
		options = append(options, picker.Option{
			Label: domain.OfferingLabel(o, m.state.Courses, m.state.CourseTypes),
			Value: int64(o.ID),
		})
	}
	m.offering = m.offering.SetOptions(options).Select(int64(m.st.OfferingID))
	m.st.OfferingID = domain.OfferingID(m.offering.Value())
	return m
}

// entries lists the visible registrations in display order.
func (m Model) entries() []domain.Registration {
	var out []domain.Registration
	for _, g := range manager.Grouped(m.state.Offerings, m.state.Registrations) {
		out = append(out, g.Students...)
	}
	return out
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	half := max(width/2, 20)
	m.name = m.name.SetWidth(half)
	m.email = m.email.SetWidth(max(width-half, 20))
	m.filter = m.filter.SetWidth(half)
	m.offering = m.offering.SetWidth(max(width-half, 20))
	if m.confirm != nil {
		m.confirm.SetSize(width, height)
	}
	return m
}

// Capture implements mode.Controller.
func (m Model) Capture() mode.Capture {
	switch {
	case m.confirm != nil:
		return mode.CaptureModal
	case m.focus != fieldList:
		return mode.CaptureText
	default:
		return mode.CaptureNone
	}
}

// Focus implements mode.Controller.
func (m Model) Focus() (mode.Controller, tea.Cmd) {
	var cmd tea.Cmd
	m, cmd = m.focusField(m.focus)
	return m, cmd
}

// Blur implements mode.Controller.
func (m Model) Blur() mode.Controller {
	m.name = m.name.Blur()
	m.email = m.email.Blur()
	return m
}

// Update implements mode.Controller.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case modal.SubmitMsg:
		return m.confirmDelete()
	case modal.CancelMsg:
		m.st = m.manager.CancelDelete(m.st)
		m.confirm = nil
		return m, nil
	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.focus == fieldList {
			return m.handleListKey(msg)
		}
		return m.handleFormKey(msg)
	case tea.MouseMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (mode.Controller, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Submit):
		return m.create()
	case key.Matches(msg, keys.Form.Leave):
		return m.focusField(fieldList)
	case key.Matches(msg, keys.Form.NextField):
		return m.focusField((m.focus + 1) % (fieldOffering + 1))
	case key.Matches(msg, keys.Form.PrevField):
		return m.focusField((m.focus + fieldOffering) % (fieldOffering + 1))
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
		m.st.StudentName = m.name.Value()
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
		m.st.StudentEmail = m.email.Value()
	case fieldFilter:
		m.filter, _ = m.filter.Update(msg)
		m.st = m.manager.SetFilter(m.state.Offerings, m.st, domain.CourseTypeID(m.filter.Value()))
		m = m.refreshOfferings()
	case fieldOffering:
		m.offering, _ = m.offering.Update(msg)
		m.st.OfferingID = domain.OfferingID(m.offering.Value())
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	entries := m.entries()
	n := len(entries)
	switch {
	case key.Matches(msg, keys.List.Up):
		m.cursor = shared.Clamp(m.cursor-1, n)
	case key.Matches(msg, keys.List.Down):
		m.cursor = shared.Clamp(m.cursor+1, n)
	case key.Matches(msg, keys.List.Top):
		m.cursor = 0
	case key.Matches(msg, keys.List.Bottom):
		m.cursor = shared.Clamp(n-1, n)
	case key.Matches(msg, keys.List.Delete):
		if n > 0 {
			return m.requestDelete(entries[m.cursor].ID), nil
		}
	case key.Matches(msg, keys.List.FocusForm):
		return m.focusField(fieldName)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for f := fieldName; f <= fieldOffering; f++ {
		if zone.Get(zoneField(f)).InBounds(msg) {
			return m.focusField(f)
		}
	}
	for i, r := range m.entries() {
		switch {
		case zone.Get(zoneDelete(r.ID)).InBounds(msg):
			m.cursor = i
			return m.requestDelete(r.ID), nil
		case zone.Get(zoneRow(r.ID)).InBounds(msg):
			m.cursor = i
			return m.focusField(fieldList)
		}
	}
	return m, nil
}

func (m Model) focusField(f field) (Model, tea.Cmd) {
	m.focus = f
	m.name = m.name.Blur()
	m.email = m.email.Blur()
	m.filter = m.filter.Blur()
	m.offering = m.offering.Blur()

	var cmd tea.Cmd
	switch f {
	case fieldName:
		m.name, cmd = m.name.Focus()
	case fieldEmail:
		m.email, cmd = m.email.Focus()
	case fieldFilter:
		m.filter = m.filter.Focus()
	case fieldOffering:
		m.offering = m.offering.Focus()
	}
	return m, cmd
}

func (m Model) clock() store.Clock {
	if m.services.Clock == nil {
		return shared.RealClock{}
	}
	return m.services.Clock
}

func (m Model) create() (mode.Controller, tea.Cmd) {
	regs, st, err := m.manager.Create(m.state.Registrations, m.st, m.services.IDs, m.clock().Now())
	m.st = st
	if err != nil {
		return m, mode.Reject(store.Registrations, err)
	}
	m.state.Registrations = regs
	m.name = m.name.SetValue("")
	m.email = m.email.SetValue("")
	m.offering = m.offering.Select(0)

	var cmd tea.Cmd
	m, cmd = m.focusField(fieldName)
	m.out = m.out.Post(store.ReplaceRegistrations(regs), "Student registered")
	return m, cmd
}

func (m Model) requestDelete(id domain.RegistrationID) Model {
	m.st = m.manager.RequestDelete(m.state.Registrations, m.st, id)
	if m.st.PendingDelete != id {
		return m
	}
	confirm := shared.DeleteModal("registration", 0, "")
	confirm.SetSize(m.width, m.height)
	m.confirm = &confirm
	return m
}

func (m Model) confirmDelete() (mode.Controller, tea.Cmd) {
	regs, st, removed := m.manager.ConfirmDelete(m.state.Registrations, m.st)
	m.confirm = nil
	m.st = st
	if !removed {
		return m, nil
	}
	m.state.Registrations = regs
	m.cursor = shared.Clamp(m.cursor, len(m.entries()))
	m.out = m.out.Post(store.ReplaceRegistrations(regs), "Registration deleted")
	return m, nil
}

// View implements mode.Controller.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(zoneField(fieldName), m.name.View()),
		zone.Mark(zoneField(fieldEmail), m.email.View()),
	))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		zone.Mark(zoneField(fieldFilter), m.filter.View()),
		zone.Mark(zoneField(fieldOffering), m.offering.View()),
	))
	b.WriteString("\n")
	if m.st.Err != "" {
		b.WriteString(styles.ErrorStyle.Render(m.st.Err))
	}
	b.WriteString("\n")

	title := "Registered Students"
	if m.services.ShowCounts() {
		title = fmt.Sprintf("%s (%d)", title, len(m.state.Registrations))
	}
	b.WriteString(styles.SectionTitleStyle.Render(title))
	b.WriteString("\n")

	groups := manager.Grouped(m.state.Offerings, m.state.Registrations)
	if len(groups) == 0 {
		b.WriteString(styles.MutedStyle.Render("No student registrations yet. Register students above!"))
	} else {
		b.WriteString(m.renderGroups(groups))
	}
	if n := manager.Orphaned(m.state.Offerings, m.state.Registrations); n > 0 {
		b.WriteString("\n")
		b.WriteString(styles.WarningStyle.Render(fmt.Sprintf("%d registration(s) reference removed offerings", n)))
	}

	view := b.String()
	if m.confirm != nil {
		view = m.confirm.Overlay(view)
	}
	return view
}

// line is one rendered list line; entry is the index into entries() for
// student lines and -1 for group headers.
type line struct {
	text  string
	entry int
}

func (m Model) renderGroups(groups []manager.Group) string {
	var lines []line
	cursorLine := 0
	entry := 0
	for _, g := range groups {
		header := fmt.Sprintf("%s (%d students)",
			domain.OfferingLabel(g.Offering, m.state.Courses, m.state.CourseTypes), len(g.Students))
		lines = append(lines, line{text: styles.SecondaryStyle.Bold(true).Render(header), entry: -1})
		for _, r := range g.Students {
			if entry == m.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, line{text: m.renderEntry(r, entry == m.cursor && m.focus == fieldList), entry: entry})
			entry++
		}
	}

	size := len(lines)
	if m.height > 0 {
		size = max(m.height-chrome, 1)
	}
	start, end := shared.Window(len(lines), cursorLine, size)
	out := make([]string, 0, end-start)
	for _, l := range lines[start:end] {
		out = append(out, l.text)
	}
	return strings.Join(out, "\n")
}

func (m Model) renderEntry(r domain.Registration, selected bool) string {
	indicator := "    "
	if selected {
		indicator = "  " + styles.SelectionIndicatorStyle.Render("> ")
	}

	text := fmt.Sprintf("%s  %s  Registered: %s", r.StudentName, r.StudentEmail, r.RegisteredAt)
	action := styles.ErrorStyle.Render("[delete]")
	if m.width > 0 {
		room := max(m.width-lipgloss.Width("[delete]")-len(indicator)-2, 8)
		text = runewidth.Truncate(text, room, "…")
	}

	nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	return zone.Mark(zoneRow(r.ID), indicator+nameStyle.Render(text)) + "  " + zone.Mark(zoneDelete(r.ID), action)
}
