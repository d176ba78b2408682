// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// AppKeys are handled by the coordinator before any manager sees the key.
type AppKeys struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	Tab4       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	ToggleLogs key.Binding
}

// ListKeys apply while a manager's list has focus.
type ListKeys struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Edit      key.Binding
	Delete    key.Binding
	FocusForm key.Binding
}

// FormKeys apply while a create form or an inline edit has focus.
type FormKeys struct {
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Leave     key.Binding
}

// App is the global keymap.
var App = AppKeys{
	NextTab: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "previous tab"),
	),
	Tab1: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "course types")),
	Tab2: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "courses")),
	Tab3: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "course offerings")),
	Tab4: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "registrations")),
	Help: key.NewBinding(
		key.WithKeys("?", "f1"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	ToggleLogs: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "toggle logs (debug)"),
	),
}

// List is the keymap for manager lists.
var List = ListKeys{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first row"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last row"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e/enter", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x", "delete"),
		key.WithHelp("d", "delete"),
	),
	FocusForm: key.NewBinding(
		key.WithKeys("a", "tab", "shift+tab"),
		key.WithHelp("a/tab", "go to form"),
	),
}

// Form is the keymap for create forms and inline edits.
var Form = FormKeys{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel / back to list"),
	),
}

// ShortHelp returns the footer bindings shown under a list.
func (k ListKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Delete, k.FocusForm}
}

// ShortHelp returns the footer bindings shown under a form.
func (k FormKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.Leave}
}

// FullHelp returns every binding grouped for the help overlay.
func FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{App.NextTab, App.PrevTab, App.Tab1, App.Tab2, App.Tab3, App.Tab4},
		{List.Up, List.Down, List.Top, List.Bottom, List.Edit, List.Delete, List.FocusForm},
		{Form.NextField, Form.PrevField, Form.Submit, Form.Leave},
		{App.Help, App.Quit, App.ForceQuit, App.ToggleLogs},
	}
}

// GroupTitles names the groups returned by FullHelp.
var GroupTitles = []string{"Tabs", "Lists", "Forms", "General"}
