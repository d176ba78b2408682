// Package mode defines the controller interface shared by the four tab
// screens and the messages they send to the app coordinator.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/regdesk/internal/config"
	"github.com/zjrosen/regdesk/internal/domain"
	"github.com/zjrosen/regdesk/internal/manager"
	"github.com/zjrosen/regdesk/internal/store"
	"github.com/zjrosen/regdesk/internal/ui/toaster"
)

// Capture describes what a controller is doing with the keyboard, so the
// coordinator knows which global keys it may take.
type Capture int

const (
	// CaptureNone leaves single-letter global keys (q, ?, 1-4) to the app.
	CaptureNone Capture = iota
	// CaptureText means a text field has focus; only ctrl bindings are global.
	CaptureText
	// CaptureModal means a confirmation is open; it gets every key.
	CaptureModal
)

// Controller defines the interface all tab screens implement.
type Controller interface {
	// Init returns initial commands for the mode.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the tab body below the header and tab bar.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller

	// SetState replaces the collections the controller renders from,
	// keeping its uncommitted form state.
	SetState(state store.State) Controller

	// Capture reports keyboard ownership.
	Capture() Capture

	// Focus is called when the tab becomes active.
	Focus() (Controller, tea.Cmd)

	// Blur is called when another tab becomes active.
	Blur() Controller

	// TakeCommit returns the change posted by the last Update, if any, and
	// the controller with its outbox emptied. The coordinator calls it right
	// after Update so the change is applied in the same event.
	TakeCommit() (Controller, *Commit)
}

// Services contains shared dependencies injected into controllers.
type Services struct {
	Config *config.Config
	Clock  store.Clock
	IDs    manager.IDSource
}

// DateLayout returns the configured registration date layout.
func (s Services) DateLayout() string {
	if s.Config == nil || s.Config.UI.DateFormat == "" {
		return manager.DefaultDateLayout
	}
	return s.Config.UI.DateFormat
}

// ShowCounts reports whether section titles carry record counts.
func (s Services) ShowCounts() bool {
	return s.Config == nil || s.Config.UI.ShowCounts
}

// Commit is a change a controller asks the coordinator to apply to the
// shared state.
type Commit struct {
	Change store.Change
	Toast  string
}

// RejectedMsg reports an operation refused by a validation rule.
type RejectedMsg struct {
	Collection store.Collection
	Rule       domain.Rule
}

// ShowToastMsg asks the coordinator to show a toast.
type ShowToastMsg struct {
	Message string
	Style   toaster.Style
}

// Outbox holds the change a controller posts while handling one message.
type Outbox struct {
	pending *Commit
}

// Post records change. At most one change is posted per Update; a later
// post replaces an earlier one not yet taken.
func (o Outbox) Post(change store.Change, toast string) Outbox {
	return Outbox{pending: &Commit{Change: change, Toast: toast}}
}

// Take returns the pending change and an empty outbox.
func (o Outbox) Take() (Outbox, *Commit) {
	return Outbox{}, o.pending
}

// Reject returns a command delivering RejectedMsg for err when it is a
// validation error, and nil otherwise.
func Reject(collection store.Collection, err error) tea.Cmd {
	ve, ok := domain.AsValidation(err)
	if !ok {
		return nil
	}
	return func() tea.Msg { return RejectedMsg{Collection: collection, Rule: ve.Rule} }
}
