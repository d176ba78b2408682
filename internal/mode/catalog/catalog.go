// Package catalog implements the Course Types and Courses tabs: a name
// form above a list of records that can be renamed or deleted.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/regdesk/internal/keys"
	"github.com/zjrosen/regdesk/internal/manager"
	"github.com/zjrosen/regdesk/internal/mode"
	"github.com/zjrosen/regdesk/internal/mode/shared"
	"github.com/zjrosen/regdesk/internal/store"
	"github.com/zjrosen/regdesk/internal/ui/modal"
	"github.com/zjrosen/regdesk/internal/ui/styles"
	"github.com/zjrosen/regdesk/internal/ui/textfield"
)

type focus int

const (
	focusList focus = iota
	focusForm
)

// chrome is the line count above the rows: form box (3), blank, title.
const chrome = 5

// Model is the name list screen for one Kind.
type Model[ID ~int64, T manager.Named[ID, T]] struct {
	kind     Kind[ID, T]
	services mode.Services

	state store.State
	items []T
	st    manager.NameState[ID]

	draft   textfield.Model
	edit    textfield.Model
	cursor  int
	focus   focus
	confirm *modal.Model
	out     mode.Outbox

	width  int
	height int
}

// New creates the screen for kind showing state.
func New[ID ~int64, T manager.Named[ID, T]](kind Kind[ID, T], services mode.Services, state store.State) Model[ID, T] {
	m := Model[ID, T]{
		kind:     kind,
		services: services,
		draft:    textfield.New(kind.FormTitle, kind.Placeholder).WithHint("enter to add"),
		edit:     textfield.New("", ""),
	}
	return m.setState(state)
}

// NewCourseTypes creates the Course Types tab.
func NewCourseTypes(services mode.Services, state store.State) mode.Controller {
	return New(CourseTypes(), services, state)
}

// NewCourses creates the Courses tab.
func NewCourses(services mode.Services, state store.State) mode.Controller {
	return New(Courses(), services, state)
}

// Init implements mode.Controller.
func (m Model[ID, T]) Init() tea.Cmd {
	return nil
}

// NameState exposes the uncommitted state for tests and diagnostics.
func (m Model[ID, T]) NameState() manager.NameState[ID] {
	return m.st
}

// TakeCommit implements mode.Controller.
func (m Model[ID, T]) TakeCommit() (mode.Controller, *mode.Commit) {
	var c *mode.Commit
	m.out, c = m.out.Take()
	return m, c
}

// SetState implements mode.Controller.
func (m Model[ID, T]) SetState(state store.State) mode.Controller {
	return m.setState(state)
}

func (m Model[ID, T]) setState(state store.State) Model[ID, T] {
	m.state = state
	m.items = m.kind.Items(state)
	m.cursor = shared.Clamp(m.cursor, len(m.items))
	return m
}

// SetSize implements mode.Controller.
func (m Model[ID, T]) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.draft = m.draft.SetWidth(width)
	m.edit = m.edit.SetWidth(max(width/2, 10))
	if m.confirm != nil {
		m.confirm.SetSize(width, height)
	}
	return m
}

// Capture implements mode.Controller.
func (m Model[ID, T]) Capture() mode.Capture {
	switch {
	case m.confirm != nil:
		return mode.CaptureModal
	case m.st.EditingID != 0 || m.focus == focusForm:
		return mode.CaptureText
	default:
		return mode.CaptureNone
	}
}

// Focus implements mode.Controller.
func (m Model[ID, T]) Focus() (mode.Controller, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.st.EditingID != 0:
		m.edit, cmd = m.edit.Focus()
	case m.focus == focusForm:
		m.draft, cmd = m.draft.Focus()
	}
	return m, cmd
}

// Blur implements mode.Controller.
func (m Model[ID, T]) Blur() mode.Controller {
	m.draft = m.draft.Blur()
	m.edit = m.edit.Blur()
	return m
}

// Update implements mode.Controller.
func (m Model[ID, T]) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case modal.SubmitMsg:
		return m.confirmDelete()
	case modal.CancelMsg:
		m.st = m.kind.Manager.CancelDelete(m.st)
		m.confirm = nil
		return m, nil
	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		switch {
		case m.st.EditingID != 0:
			return m.handleEditKey(msg)
		case m.focus == focusForm:
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

	// Cursor blink and other input messages go to the focused field.
	var cmd tea.Cmd
	if m.st.EditingID != 0 {
		m.edit, cmd = m.edit.Update(msg)
	} else {
		m.draft, cmd = m.draft.Update(msg)
	}
	return m, cmd
}

func (m Model[ID, T]) updateConfirm(msg tea.Msg) (mode.Controller, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	return m, cmd
}

func (m Model[ID, T]) handleFormKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Submit):
		return m.create()
	case key.Matches(msg, keys.Form.Leave, keys.Form.NextField, keys.Form.PrevField):
		m.focus = focusList
		m.draft = m.draft.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	m.st.Draft = m.draft.Value()
	return m, cmd
}

func (m Model[ID, T]) handleEditKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Form.Submit):
		return m.commitEdit()
	case key.Matches(msg, keys.Form.Leave):
		m.st = m.kind.Manager.CancelEdit(m.st)
		m.edit = m.edit.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	m.st.EditName = m.edit.Value()
	return m, cmd
}

func (m Model[ID, T]) handleListKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.List.Up):
		m.cursor = shared.Clamp(m.cursor-1, len(m.items))
	case key.Matches(msg, keys.List.Down):
		m.cursor = shared.Clamp(m.cursor+1, len(m.items))
	case key.Matches(msg, keys.List.Top):
		m.cursor = 0
	case key.Matches(msg, keys.List.Bottom):
		m.cursor = shared.Clamp(len(m.items)-1, len(m.items))
	case key.Matches(msg, keys.List.Edit):
		if len(m.items) > 0 {
			return m.startEdit(m.items[m.cursor].Key())
		}
	case key.Matches(msg, keys.List.Delete):
		if len(m.items) > 0 {
			return m.requestDelete(m.items[m.cursor].Key())
		}
	case key.Matches(msg, keys.List.FocusForm):
		m.focus = focusForm
		var cmd tea.Cmd
		m.draft, cmd = m.draft.Focus()
		return m, cmd
	}
	return m, nil
}

func (m Model[ID, T]) handleMouse(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.st.EditingID != 0 {
		return m, nil
	}

	if zone.Get(m.zoneID("form", 0)).InBounds(msg) {
		m.focus = focusForm
		var cmd tea.Cmd
		m.draft, cmd = m.draft.Focus()
		return m, cmd
	}

	for i, item := range m.items {
		id := item.Key()
		switch {
		case zone.Get(m.zoneID("edit", id)).InBounds(msg):
			m.cursor = i
			return m.startEdit(id)
		case zone.Get(m.zoneID("delete", id)).InBounds(msg):
			m.cursor = i
			return m.requestDelete(id)
		case zone.Get(m.zoneID("row", id)).InBounds(msg):
			m.cursor = i
			m.focus = focusList
			m.draft = m.draft.Blur()
			return m, nil
		}
	}
	return m, nil
}

func (m Model[ID, T]) create() (mode.Controller, tea.Cmd) {
	items, st, err := m.kind.Manager.Create(m.items, m.st, m.services.IDs)
	m.st = st
	if err != nil {
		return m, mode.Reject(m.kind.Collection, err)
	}
	m.items = items
	m.cursor = len(items) - 1
	m.draft = m.draft.SetValue("")
	m.out = m.out.Post(m.kind.Replace(items), m.kind.Manager.Noun+" added")
	return m, nil
}

func (m Model[ID, T]) startEdit(id ID) (mode.Controller, tea.Cmd) {
	m.st = m.kind.Manager.StartEdit(m.items, m.st, id)
	if m.st.EditingID != id {
		return m, nil
	}
	m.focus = focusList
	m.draft = m.draft.Blur()
	m.edit = m.edit.SetValue(m.st.EditName)
	var cmd tea.Cmd
	m.edit, cmd = m.edit.Focus()
	return m, cmd
}

func (m Model[ID, T]) commitEdit() (mode.Controller, tea.Cmd) {
	editing := m.st.EditingID
	exists := slices.ContainsFunc(m.items, func(item T) bool { return item.Key() == editing })

	items, st, err := m.kind.Manager.CommitEdit(m.items, m.st)
	m.st = st
	if err != nil {
		return m, mode.Reject(m.kind.Collection, err)
	}
	m.edit = m.edit.Blur()
	if !exists {
		return m, nil
	}
	m.items = items
	m.out = m.out.Post(m.kind.Replace(items), m.kind.Manager.Noun+" updated")
	return m, nil
}

func (m Model[ID, T]) requestDelete(id ID) (mode.Controller, tea.Cmd) {
	m.st = m.kind.Manager.RequestDelete(m.items, m.st, id)
	if m.st.PendingDelete != id {
		return m, nil
	}
	confirm := shared.DeleteModal(m.kind.Noun, m.kind.Dependents(m.state, id), "course offering")
	confirm.SetSize(m.width, m.height)
	m.confirm = &confirm
	return m, nil
}

func (m Model[ID, T]) confirmDelete() (mode.Controller, tea.Cmd) {
	items, st, removed := m.kind.Manager.ConfirmDelete(m.items, m.st)
	m.confirm = nil
	m.st = st
	if !removed {
		return m, nil
	}
	if st.EditingID == 0 {
		m.edit = m.edit.Blur()
	}
	m.items = items
	m.cursor = shared.Clamp(m.cursor, len(items))
	m.out = m.out.Post(m.kind.Replace(items), m.kind.Manager.Noun+" deleted")
	return m, nil
}

func (m Model[ID, T]) zoneID(part string, id ID) string {
	return fmt.Sprintf("%s:%s:%d", m.kind.Collection, part, id)
}

// View implements mode.Controller.
func (m Model[ID, T]) View() string {
	var b strings.Builder
	b.WriteString(zone.Mark(m.zoneID("form", 0), m.draft.View()))
	b.WriteString("\n")
	if m.st.Err != "" {
		b.WriteString(styles.ErrorStyle.Render(m.st.Err))
	}
	b.WriteString("\n")
	b.WriteString(styles.SectionTitleStyle.Render(m.listTitle()))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(styles.MutedStyle.Render(m.kind.Empty))
	} else {
		b.WriteString(m.renderRows())
	}

	view := b.String()
	if m.confirm != nil {
		view = m.confirm.Overlay(view)
	}
	return view
}

func (m Model[ID, T]) listTitle() string {
	if !m.services.ShowCounts() {
		return m.kind.ListTitle
	}
	return fmt.Sprintf("%s (%d)", m.kind.ListTitle, len(m.items))
}

func (m Model[ID, T]) renderRows() string {
	size := len(m.items)
	if m.height > 0 {
		size = max(m.height-chrome, 1)
	}
	start, end := shared.Window(len(m.items), m.cursor, size)

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(i))
	}
	return strings.Join(rows, "\n")
}

func (m Model[ID, T]) renderRow(i int) string {
	item := m.items[i]
	id := item.Key()
	selected := i == m.cursor && m.focus == focusList

	indicator := "  "
	if selected {
		indicator = styles.SelectionIndicatorStyle.Render("> ")
	}

	if m.st.EditingID == id {
		hint := styles.MutedStyle.Render("  enter save · esc cancel")
		return indicator + m.edit.View() + hint
	}

	actions := zone.Mark(m.zoneID("edit", id), styles.SecondaryStyle.Render("[edit]")) + " " +
		zone.Mark(m.zoneID("delete", id), styles.ErrorStyle.Render("[delete]"))
	actionsWidth := lipgloss.Width("[edit] [delete]")

	label := item.Label()
	if n := m.kind.Dependents(m.state, id); n > 0 {
		label += fmt.Sprintf("  (%d offerings)", n)
	}
	room := max(m.width-actionsWidth-4, 8)
	if m.width == 0 {
		room = max(runewidth.StringWidth(label), 8)
	}
	label = runewidth.Truncate(label, room, "…")

	nameStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)
	if selected {
		nameStyle = nameStyle.Bold(true)
	}
	gap := max(room-runewidth.StringWidth(label), 0) + 2
	return zone.Mark(m.zoneID("row", id), indicator+nameStyle.Render(label)) + strings.Repeat(" ", gap) + actions
}
