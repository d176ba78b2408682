// Package app contains the root application model. It owns the state
// shared by the four tabs and applies the changes they commit.
package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/regdesk/internal/config"
	"github.com/zjrosen/regdesk/internal/keys"
	"github.com/zjrosen/regdesk/internal/log"
	"github.com/zjrosen/regdesk/internal/manager"
	"github.com/zjrosen/regdesk/internal/mode"
	"github.com/zjrosen/regdesk/internal/mode/catalog"
	"github.com/zjrosen/regdesk/internal/mode/offerings"
	"github.com/zjrosen/regdesk/internal/mode/registrations"
	"github.com/zjrosen/regdesk/internal/mode/shared"
	"github.com/zjrosen/regdesk/internal/pubsub"
	"github.com/zjrosen/regdesk/internal/store"
	"github.com/zjrosen/regdesk/internal/tracing"
	"github.com/zjrosen/regdesk/internal/ui/help"
	"github.com/zjrosen/regdesk/internal/ui/logoverlay"
	"github.com/zjrosen/regdesk/internal/ui/styles"
	"github.com/zjrosen/regdesk/internal/ui/toaster"
)

const (
	title    = "Student Registration System"
	subtitle = "Manage courses, types, offerings, and student registrations"

	// headerHeight covers title, subtitle, blank line, tab bar and divider;
	// footerHeight the blank line and key hints below the tab body.
	headerHeight = 5
	footerHeight = 2
)

func zoneTab(t store.Tab) string { return fmt.Sprintf("tab:%d", t) }

// ReloadEvent carries a freshly validated configuration.
type ReloadEvent = pubsub.Event[config.Config]

// Options configures New.
type Options struct {
	Config config.Config
	State  store.State

	// Clock defaults to the wall clock and IDs to a millisecond sequence
	// starting above the largest id in State.
	Clock store.Clock
	IDs   manager.IDSource

	// Tracing defaults to a no-op provider.
	Tracing *tracing.Provider

	// Reloads, when set, delivers configuration changes.
	Reloads *pubsub.Broker[config.Config]

	// Debug enables the log overlay (ctrl+x).
	Debug bool
}

// Model is the root application state.
type Model struct {
	state    store.State
	modes    []mode.Controller
	services mode.Services
	tracing  *tracing.Provider

	width  int
	height int

	toaster  toaster.Model
	help     help.Model
	showHelp bool

	debugMode   bool
	logOverlay  logoverlay.Model
	logListener *log.LogListener

	ctx            context.Context
	cancel         context.CancelFunc
	reloadListener *pubsub.Listener[config.Config]
}

// New creates the application model showing opts.State.
func New(opts Options) Model {
	cfg := opts.Config
	clock := opts.Clock
	if clock == nil {
		clock = shared.RealClock{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = store.NewSequence(clock, opts.State.MaxID())
	}
	provider := opts.Tracing
	if provider == nil {
		provider, _ = tracing.NewProvider(config.TracingConfig{}, "")
	}

	services := mode.Services{Config: &cfg, Clock: clock, IDs: ids}

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		state:      opts.State,
		services:   services,
		tracing:    provider,
		toaster:    toaster.New(),
		help:       help.New(cfg.UI.MarkdownStyle),
		debugMode:  opts.Debug,
		logOverlay: logoverlay.New(0, 0),
		ctx:        ctx,
		cancel:     cancel,
	}
	m.modes = []mode.Controller{
		store.TabCourseTypes:   catalog.NewCourseTypes(services, opts.State),
		store.TabCourses:       catalog.NewCourses(services, opts.State),
		store.TabOfferings:     offerings.New(services, opts.State),
		store.TabRegistrations: registrations.New(services, opts.State),
	}

	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}
	if opts.Reloads != nil {
		m.reloadListener = pubsub.Listen(ctx, opts.Reloads)
	}
	return m
}

// State returns the committed application state.
func (m Model) State() store.State {
	return m.state
}

// Active returns the visible tab.
func (m Model) Active() store.Tab {
	return m.state.Active
}

func (m Model) active() mode.Controller {
	return m.modes[m.state.Active]
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.active().Init()}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Next())
	}
	if m.reloadListener != nil {
		cmds = append(cmds, m.reloadListener.Next())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.logOverlay.Visible() || m.showHelp {
			return m, nil
		}
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			m.active().Capture() != mode.CaptureModal {
			for _, t := range store.Tabs {
				if zone.Get(zoneTab(t)).InBounds(msg) {
					return m.switchTab(t)
				}
			}
		}

	case mode.RejectedMsg:
		log.Debug(log.CatMode, "Validation rejected", "collection", msg.Collection, "rule", msg.Rule)
		tracing.RecordRejected(m.ctx, m.tracing.Tracer(), string(msg.Collection), msg.Rule.String())
		return m, nil

	case mode.ShowToastMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(msg.Message, msg.Style, toaster.DefaultDuration)
		return m, cmd

	case toaster.DismissMsg:
		m.toaster = m.toaster.Dismiss(msg)
		return m, nil

	case ReloadEvent:
		m = m.applyConfig(msg.Payload)
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show("Configuration reloaded", toaster.StyleInfo, toaster.DefaultDuration)
		if m.reloadListener != nil {
			cmd = tea.Batch(cmd, m.reloadListener.Next())
		}
		return m, cmd

	case log.LogEvent:
		if m.logOverlay.Visible() {
			m.logOverlay.Refresh()
		}
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Next()

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil
	}

	return m.delegate(msg)
}

// delegate forwards msg to the active tab and applies any change it posted
// before returning, so no other message can observe the state in between.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	c, cmd := m.active().Update(msg)
	c, change := c.TakeCommit()
	m.modes = slices.Clone(m.modes)
	m.modes[m.state.Active] = c
	if change == nil {
		return m, cmd
	}
	m, toast := m.commit(*change)
	return m, tea.Batch(cmd, toast)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.App.ForceQuit) {
		return m, tea.Quit
	}
	if m.debugMode && key.Matches(msg, keys.App.ToggleLogs) {
		m.logOverlay.Toggle()
		return m, nil
	}
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}
	if m.showHelp {
		if key.Matches(msg, keys.App.Help, keys.Form.Leave, keys.App.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	capture := m.active().Capture()
	if capture != mode.CaptureModal {
		switch {
		case key.Matches(msg, keys.App.NextTab):
			return m.switchTab(m.state.Active.Next())
		case key.Matches(msg, keys.App.PrevTab):
			return m.switchTab(m.state.Active.Prev())
		}
	}
	if capture == mode.CaptureNone {
		switch {
		case key.Matches(msg, keys.App.Tab1):
			return m.switchTab(store.TabCourseTypes)
		case key.Matches(msg, keys.App.Tab2):
			return m.switchTab(store.TabCourses)
		case key.Matches(msg, keys.App.Tab3):
			return m.switchTab(store.TabOfferings)
		case key.Matches(msg, keys.App.Tab4):
			return m.switchTab(store.TabRegistrations)
		case key.Matches(msg, keys.App.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, keys.App.Quit):
			return m, tea.Quit
		}
	}
	return m.delegate(msg)
}

func (m Model) switchTab(t store.Tab) (tea.Model, tea.Cmd) {
	if t == m.state.Active {
		return m, nil
	}
	log.Debug(log.CatMode, "Switching tab", "from", m.state.Active, "to", t)

	m.modes = slices.Clone(m.modes)
	m.modes[m.state.Active] = m.active().Blur()
	m.state = m.state.WithActive(t)

	var cmd tea.Cmd
	m.modes[t], cmd = m.modes[t].Focus()
	return m, cmd
}

// commit replaces one collection and hands the new state to every tab.
func (m Model) commit(msg mode.Commit) (Model, tea.Cmd) {
	collection := string(msg.Change.Collection)
	size := msg.Change.Len()

	_, span := tracing.StartCommit(m.ctx, m.tracing.Tracer(), collection, size, m.state.Active.String())
	m.state = m.state.Apply(msg.Change)
	span.End()

	log.Info(log.CatStore, "Committed", "collection", collection, "size", size)

	m.modes = m.withState(m.state)
	if msg.Toast == "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(msg.Toast, toaster.StyleSuccess, toaster.DefaultDuration)
	return m, cmd
}

func (m Model) withState(state store.State) []mode.Controller {
	next := make([]mode.Controller, len(m.modes))
	for i, c := range m.modes {
		next[i] = c.SetState(state)
	}
	return next
}

// applyConfig swaps in a reloaded configuration. The collections are left
// alone; the theme and help are rebuilt and every tab re-reads the date
// layout and count settings.
func (m Model) applyConfig(cfg config.Config) Model {
	_, span := m.tracing.Tracer().Start(m.ctx, tracing.SpanConfigApply)
	defer span.End()

	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		tracing.RecordError(span, err)
		log.ErrorErr(log.CatConfig, "Reloaded theme rejected", err)
		cfg.Theme = m.services.Config.Theme
	}

	*m.services.Config = cfg
	m.help = help.New(cfg.UI.MarkdownStyle).SetSize(m.width, m.height)
	m.modes = m.withState(m.state)

	log.Info(log.CatConfig, "Configuration applied", "date_format", cfg.UI.DateFormat, "preset", cfg.Theme.Preset)
	return m
}

func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height

	body := max(height-headerHeight-footerHeight, 1)
	m.modes = slices.Clone(m.modes)
	for i, c := range m.modes {
		m.modes[i] = c.SetSize(width, body)
	}
	m.toaster = m.toaster.SetSize(width, height)
	m.help = m.help.SetSize(width, height)
	m.logOverlay.SetSize(width, height)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.HeaderTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(subtitle))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(styles.MutedStyle.Render(strings.Repeat("─", max(m.width, 20))))
	b.WriteString("\n")
	b.WriteString(m.active().View())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	view := b.String()
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view)
	}
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return zone.Scan(view)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(store.Tabs))
	for _, t := range store.Tabs {
		style := styles.TabInactiveStyle
		if t == m.state.Active {
			style = styles.TabActiveStyle
		}
		tabs = append(tabs, zone.Mark(zoneTab(t), style.Render(t.String())))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFooter() string {
	var bindings []key.Binding
	if m.active().Capture() == mode.CaptureNone {
		bindings = append(keys.List.ShortHelp(), keys.App.Help, keys.App.Quit)
	} else {
		bindings = keys.Form.ShortHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styles.MutedStyle.Render(strings.Join(parts, " · "))
}

// Close stops the background listeners.
func (m *Model) Close() error {
	m.cancel()
	return nil
}
