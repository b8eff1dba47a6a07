package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"namepick/internal/config"
	"namepick/internal/domain"
	"namepick/internal/eventbus"
	"namepick/internal/ui/field"
	"namepick/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	field    field.Model
	renderer *views.Renderer
	help     help.Model
	keys     KeyMap
	helpKeys helpKeyMap

	width  int
	height int

	rosterSize    int
	status        string
	statusIsError bool

	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	inPagerMode  bool // tracks if we're currently in pager mode

	printOnSelect bool // quit after the first confirmed selection
	quitting      bool

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, roster []domain.Candidate) *Model {
	f := field.New(roster,
		field.WithDelay(cfg.DebounceDelay()),
		field.WithMaxRows(cfg.UISettings.MaxVisibleRows),
		field.WithShowYears(cfg.UISettings.ShowYears),
	)

	m := &Model{
		bus:          bus,
		config:       cfg,
		field:        f,
		renderer:     views.NewRenderer(),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		rosterSize:   len(roster),
		helpRenderer: NewHelpRenderer(),
	}
	m.helpKeys = helpKeyMap{field: f.Keys(), app: m.keys}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetPrintOnSelect makes the program quit once a candidate is confirmed,
// so the caller can print the pick and exit.
func (m *Model) SetPrintOnSelect(v bool) {
	m.printOnSelect = v
}

// Selected exposes the confirmed candidate after the program has exited
func (m *Model) Selected() (domain.Candidate, bool) {
	return m.field.Selected()
}

// Init returns an initial command; the field starts focused
func (m *Model) Init() tea.Cmd {
	var cmd tea.Cmd
	m.field, cmd = m.field.Focus()
	return cmd
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case ConfigReloadedMsg:
		m.config = msg.Config
		m.field = m.field.
			SetDelay(m.config.DebounceDelay()).
			SetMaxRows(m.config.UISettings.MaxVisibleRows).
			SetShowYears(m.config.UISettings.ShowYears)
		m.setStatus("Configuration reloaded", false)
		return m, nil

	case helpPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			log.Error("help pager failed", "err", msg.err)
			m.setStatus(fmt.Sprintf("Help pager failed: %v", msg.err), true)
		}
		return m, nil
	}

	// Everything else (debounce ticks, cursor blink) belongs to the field
	return m.updateField(msg)
}

// handleKey routes key input between the field and the app bindings
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While ov owns the terminal, swallow anything that leaks through
	if m.inPagerMode {
		return m, nil
	}

	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.field.Focused() {
		return m.updateField(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.helpOps == nil {
			return m, nil
		}
		m.inPagerMode = true
		return m, showHelpCmd(m.helpOps, m.helpRenderer)

	case key.Matches(msg, m.keys.Focus):
		var cmd tea.Cmd
		m.field, cmd = m.field.Focus()
		return m, cmd
	}

	// Any other printable key refocuses the field and types into it
	if msg.Type == tea.KeyRunes {
		var focusCmd tea.Cmd
		m.field, focusCmd = m.field.Focus()
		model, cmd := m.updateField(msg)
		return model, tea.Batch(focusCmd, cmd)
	}
	return m, nil
}

// updateField forwards a message to the field and translates the state
// changes it caused into bus events and status updates.
func (m *Model) updateField(msg tea.Msg) (tea.Model, tea.Cmd) {
	prevSelected, hadSelection := m.field.Selected()
	prevApplied := m.field.Applied()

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	cmds := []tea.Cmd{cmd}

	if applied := m.field.Applied(); applied != prevApplied {
		m.bus.Publish(eventbus.QueryAppliedEvent{Query: applied, Matches: len(m.field.Visible())})
	}

	sel, hasSelection := m.field.Selected()
	switch {
	case hasSelection && (!hadSelection || sel.Slug != prevSelected.Slug):
		m.bus.Publish(eventbus.CandidateSelectedEvent{Candidate: sel})
		m.setStatus(fmt.Sprintf("Selected %s", sel.Label()), false)
		if m.printOnSelect {
			m.quitting = true
			cmds = append(cmds, tea.Quit)
		}
	case !hasSelection && hadSelection:
		m.bus.Publish(eventbus.SelectionClearedEvent{Previous: prevSelected})
		m.setStatus("Selection cleared", false)
	}

	return m, tea.Batch(cmds...)
}

// handleEvent applies an externally published domain event to the UI
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.RosterLoadedEvent:
		m.field = m.field.SetRoster(e.Candidates)
		m.rosterSize = len(e.Candidates)
		m.setStatus(fmt.Sprintf("Loaded %d people from %s", len(e.Candidates), e.Source), false)

	case eventbus.AppReadyEvent:
		m.rosterSize = e.RosterSize
		m.setStatus(fmt.Sprintf("%d people loaded. Start typing to filter.", e.RosterSize), false)

	case eventbus.ErrorEvent:
		log.Error("domain error", "msg", e.Message, "err", e.Err)
		m.setStatus(e.Message, true)
	}
	return m, nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusIsError = isErr
}

// View renders the current state
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var selected *domain.Candidate
	if sel, ok := m.field.Selected(); ok {
		selected = &sel
	}

	return m.renderer.Render(views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Selected:      selected,
		FieldView:     m.field.View(),
		AppliedQuery:  m.field.Applied(),
		MatchCount:    len(m.field.Visible()),
		RosterSize:    m.rosterSize,
		StatusMessage: m.status,
		StatusIsError: m.statusIsError,
		HelpView:      m.help.View(m.helpKeys),
	})
}
