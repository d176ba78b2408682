// Package offerings implements the Course Offerings tab, which pairs a
// course with a course type.
package offerings

import (
	"fmt"
	"slices"
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
)

const (
	zoneForm = "offerings:form"
	chrome   = 5
)

// Zone ids of a row's parts.
func zoneRow(id domain.OfferingID) string    { return fmt.Sprintf("offerings:row:%d", id) }
func zoneEdit(id domain.OfferingID) string   { return fmt.Sprintf("offerings:edit:%d", id) }
func zoneDelete(id domain.OfferingID) string { return fmt.Sprintf("offerings:delete:%d", id) }

// field is the focused part of the screen.
type field int

const (
	fieldList field = iota
	fieldCourse
	fieldType
)

// Model is the Course Offerings screen.
type Model struct {
	services mode.Services
	manager  manager.OfferingManager

	state store.State
	st    manager.OfferingState

	course     picker.Model
	kind       picker.Model
	editCourse picker.Model
	editKind   picker.Model
	editField  field

	cursor  int
	focus   field
	confirm *modal.Model
	out     mode.Outbox

	width  int
	height int
}

// New creates the Course Offerings tab.
func New(services mode.Services, state store.State) mode.Controller {
	m := Model{
		services:   services,
		course:     picker.New("Select Course", "Choose a course..."),
		kind:       picker.New("Select Course Type", "Choose a type..."),
		editCourse: picker.New("Course", "Choose a course..."),
		editKind:   picker.New("Course Type", "Choose a type..."),
		editField:  fieldCourse,
	}
	return m.setState(state)
}

// State exposes the uncommitted state.
func (m Model) State() manager.OfferingState {
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

// SetState implements mode.Controller.
func (m Model) SetState(state store.State) mode.Controller {
	return m.setState(state)
}

func (m Model) setState(state store.State) Model {
	m.state = state

	courses := make([]picker.Option, 0, len(state.Courses))
	for _, c := range state.Courses {
		courses = append(courses, picker.Option{Label: c.Name, Value: int64(c.ID)})
	}
	types := make([]picker.Option, 0, len(state.CourseTypes))
	for _, t := range state.CourseTypes {
		types = append(types, picker.Option{Label: t.Name, Value: int64(t.ID)})
	}

	m.course = m.course.SetOptions(courses)
	m.kind = m.kind.SetOptions(types)
	m.editCourse = m.editCourse.SetOptions(courses)
	m.editKind = m.editKind.SetOptions(types)

	// A selection whose record disappeared falls back to the placeholder.
	m.st.CourseID = domain.CourseID(m.course.Value())
	m.st.CourseTypeID = domain.CourseTypeID(m.kind.Value())

	m.cursor = shared.Clamp(m.cursor, len(state.Offerings))
	return m
}

// SetSize implements mode.Controller.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	half := max(width/2, 20)
	m.course = m.course.SetWidth(half)
	m.kind = m.kind.SetWidth(width - half)
	m.editCourse = m.editCourse.SetWidth(max(width/3, 20))
	m.editKind = m.editKind.SetWidth(max(width/3, 20))
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
	case m.st.EditingID != 0 || m.focus != fieldList:
		return mode.CaptureText
	default:
		return mode.CaptureNone
	}
}

// Focus implements mode.Controller.
func (m Model) Focus() (mode.Controller, tea.Cmd) {
	return m, nil
}

// Blur implements mode.Controller.
func (m Model) Blur() mode.Controller {
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
		switch {
		case m.st.EditingID != 0:
			return m.handleEditKey(msg)
		case m.focus != fieldList:
			return m.handleFormKey(msg)
		default:
			return m.handleListKey(msg)
		}
	case tea.MouseMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.handleMouse(msg)
	}
	return m, nil
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
		return m.focusField(fieldList), nil
	case key.Matches(msg, keys.Form.NextField):
		if m.focus == fieldCourse {
			return m.focusField(fieldType), nil
		}
		return m.focusField(fieldList), nil
	case key.Matches(msg, keys.Form.PrevField):
		if m.focus == fieldType {
			return m.focusField(fieldCourse), nil
		}
		return m.focusField(fieldList), nil
	}

	if m.focus == fieldCourse {
		m.course, _ = m.course.Update(msg)
		m.st.CourseID = domain.CourseID(m.course.Value())
	} else {
		m.kind, _ = m.kind.Update(msg)
		m.st.CourseTypeID = domain.CourseTypeID(m.kind.Value())
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Submit):
		return m.commitEdit()
	case key.Matches(msg, keys.Form.Leave):
		m.st = m.manager.CancelEdit(m.st)
		return m, nil
	case key.Matches(msg, keys.Form.NextField, keys.Form.PrevField):
		if m.editField == fieldCourse {
			m.editField = fieldType
		} else {
			m.editField = fieldCourse
		}
		return m.syncEditFocus(), nil
	}

	if m.editField == fieldCourse {
		m.editCourse, _ = m.editCourse.Update(msg)
		m.st.EditCourseID = domain.CourseID(m.editCourse.Value())
	} else {
		m.editKind, _ = m.editKind.Update(msg)
		m.st.EditCourseTypeID = domain.CourseTypeID(m.editKind.Value())
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	n := len(m.state.Offerings)
	switch {
	case key.Matches(msg, keys.List.Up):
		m.cursor = shared.Clamp(m.cursor-1, n)
	case key.Matches(msg, keys.List.Down):
		m.cursor = shared.Clamp(m.cursor+1, n)
	case key.Matches(msg, keys.List.Top):
		m.cursor = 0
	case key.Matches(msg, keys.List.Bottom):
		m.cursor = shared.Clamp(n-1, n)
	case key.Matches(msg, keys.List.Edit):
		if n > 0 {
			return m.startEdit(m.state.Offerings[m.cursor].ID), nil
		}
	case key.Matches(msg, keys.List.Delete):
		if n > 0 {
			return m.requestDelete(m.state.Offerings[m.cursor].ID), nil
		}
	case key.Matches(msg, keys.List.FocusForm):
		return m.focusField(fieldCourse), nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.st.EditingID != 0 {
		return m, nil
	}
	if zone.Get(zoneForm).InBounds(msg) && m.focus == fieldList {
		return m.focusField(fieldCourse), nil
	}
	for i, o := range m.state.Offerings {
		switch {
		case zone.Get(zoneEdit(o.ID)).InBounds(msg):
			m.cursor = i
			return m.startEdit(o.ID), nil
		case zone.Get(zoneDelete(o.ID)).InBounds(msg):
			m.cursor = i
			return m.requestDelete(o.ID), nil
		case zone.Get(zoneRow(o.ID)).InBounds(msg):
			m.cursor = i
			return m.focusField(fieldList), nil
		}
	}
	return m, nil
}

func (m Model) focusField(f field) Model {
	m.focus = f
	m.course = m.course.Blur()
	m.kind = m.kind.Blur()
	switch f {
	case fieldCourse:
		m.course = m.course.Focus()
	case fieldType:
		m.kind = m.kind.Focus()
	}
	return m
}

func (m Model) syncEditFocus() Model {
	m.editCourse = m.editCourse.Blur()
	m.editKind = m.editKind.Blur()
	if m.editField == fieldCourse {
		m.editCourse = m.editCourse.Focus()
	} else {
		m.editKind = m.editKind.Focus()
	}
	return m
}

func (m Model) create() (mode.Controller, tea.Cmd) {
	offerings, st, err := m.manager.Create(m.state.Offerings, m.st, m.services.IDs)
	m.st = st
	if err != nil {
		return m, mode.Reject(store.Offerings, err)
	}
	m.course = m.course.Select(0)
	m.kind = m.kind.Select(0)
	m.state.Offerings = offerings
	m.cursor = len(offerings) - 1
	m.out = m.out.Post(store.ReplaceOfferings(offerings), "Course offering added")
	return m, nil
}

func (m Model) startEdit(id domain.OfferingID) Model {
	m.st = m.manager.StartEdit(m.state.Offerings, m.st, id)
	if m.st.EditingID != id {
		return m
	}
	m = m.focusField(fieldList)
	m.editCourse = m.editCourse.Select(int64(m.st.EditCourseID))
	m.editKind = m.editKind.Select(int64(m.st.EditCourseTypeID))
	m.editField = fieldCourse
	return m.syncEditFocus()
}

func (m Model) commitEdit() (mode.Controller, tea.Cmd) {
	editing := m.st.EditingID
	exists := slices.ContainsFunc(m.state.Offerings, func(o domain.Offering) bool { return o.ID == editing })

	offerings, st, err := m.manager.CommitEdit(m.state.Offerings, m.st)
	m.st = st
	if err != nil {
		return m, mode.Reject(store.Offerings, err)
	}
	if !exists {
		return m, nil
	}
	m.state.Offerings = offerings
	m.out = m.out.Post(store.ReplaceOfferings(offerings), "Course offering updated")
	return m, nil
}

func (m Model) requestDelete(id domain.OfferingID) Model {
	m.st = m.manager.RequestDelete(m.state.Offerings, m.st, id)
	if m.st.PendingDelete != id {
		return m
	}
	confirm := shared.DeleteModal("course offering", domain.RegistrationsFor(m.state.Registrations, id), "registration")
	confirm.SetSize(m.width, m.height)
	m.confirm = &confirm
	return m
}

func (m Model) confirmDelete() (mode.Controller, tea.Cmd) {
	offerings, st, removed := m.manager.ConfirmDelete(m.state.Offerings, m.st)
	m.confirm = nil
	m.st = st
	if !removed {
		return m, nil
	}
	m.state.Offerings = offerings
	m.cursor = shared.Clamp(m.cursor, len(offerings))
	m.out = m.out.Post(store.ReplaceOfferings(offerings), "Course offering deleted")
	return m, nil
}

// View implements mode.Controller.
func (m Model) View() string {
	var b strings.Builder

	form := lipgloss.JoinHorizontal(lipgloss.Top, m.course.View(), m.kind.View())
	b.WriteString(zone.Mark(zoneForm, form))
	b.WriteString("\n")
	if m.st.Err != "" {
		b.WriteString(styles.ErrorStyle.Render(m.st.Err))
	}
	b.WriteString("\n")

	title := "Available Course Offerings"
	if m.services.ShowCounts() {
		title = fmt.Sprintf("%s (%d)", title, len(m.state.Offerings))
	}
	b.WriteString(styles.SectionTitleStyle.Render(title))
	b.WriteString("\n")

	if len(m.state.Offerings) == 0 {
		b.WriteString(styles.MutedStyle.Render("No course offerings available. Create one above!"))
	} else {
		b.WriteString(m.renderRows())
	}

	view := b.String()
	if m.confirm != nil {
		view = m.confirm.Overlay(view)
	}
	return view
}

func (m Model) renderRows() string {
	n := len(m.state.Offerings)
	size := n
	if m.height > 0 {
		size = max((m.height-chrome)/2, 1)
	}
	start, end := shared.Window(n, m.cursor, size)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(i))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(i int) string {
	o := m.state.Offerings[i]
	selected := i == m.cursor && m.focus == fieldList

	indicator := "  "
	if selected {
		indicator = styles.SelectionIndicatorStyle.Render("> ")
	}

	if m.st.EditingID == o.ID {
		pickers := lipgloss.JoinHorizontal(lipgloss.Top, m.editCourse.View(), m.editKind.View())
		hint := styles.MutedStyle.Render("  tab switch · enter save · esc cancel")
		return lipgloss.JoinHorizontal(lipgloss.Center, indicator, pickers, hint)
	}

	courses, types := m.state.Courses, m.state.CourseTypes
	label := domain.OfferingLabel(o, courses, types)
	detail := domain.OfferingDetail(o, courses, types)
	if n := domain.RegistrationsFor(m.state.Registrations, o.ID); n > 0 {
		detail += fmt.Sprintf(" · %d students", n)
	}

	actions := zone.Mark(zoneEdit(o.ID), styles.SecondaryStyle.Render("[edit]")) + " " +
		zone.Mark(zoneDelete(o.ID), styles.ErrorStyle.Render("[delete]"))
	actionsWidth := lipgloss.Width("[edit] [delete]")

	room := max(m.width-actionsWidth-4, 8)
	if m.width == 0 {
		room = max(runewidth.StringWidth(label), 8)
	}
	label = runewidth.Truncate(label, room, "…")
	gap := max(room-runewidth.StringWidth(label), 0) + 2

	nameStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	line1 := zone.Mark(zoneRow(o.ID), indicator+nameStyle.Render(label)) + strings.Repeat(" ", gap) + actions
	if m.width > 0 {
		detail = runewidth.Truncate(detail, max(m.width-4, 8), "…")
	}
	line2 := "    " + styles.MutedStyle.Render(detail)
	return line1 + "\n" + line2
}
