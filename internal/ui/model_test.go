package ui

import (
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"namepick/internal/config"
	"namepick/internal/domain"
	"namepick/internal/eventbus"
)

func TestMain(m *testing.M) {
	// Keep bus and model logging out of the test output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testRoster() []domain.Candidate {
	return []domain.Candidate{
		{Slug: "ada-lovelace", Name: "Ada Lovelace", Born: 1815, Died: 1852},
		{Slug: "alan-turing", Name: "Alan Turing", Born: 1912, Died: 1954},
		{Slug: "grace-hopper", Name: "Grace Hopper", Born: 1906, Died: 1992},
	}
}

// newTestModel builds a model over the test roster with a 1ms debounce,
// initializes it and gives it a window.
func newTestModel(t *testing.T) *Model {
	t.Helper()

	bus := eventbus.New()
	t.Cleanup(bus.Stop)

	cfg := config.DefaultConfig()
	cfg.DebounceDelayMs = 1

	m := NewModel(bus, cfg, testRoster())
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func pressRune(m *Model, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func press(m *Model, typ tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: typ})
	return cmd
}

// land executes a command and feeds whatever it produces back into the
// model, unwrapping batches. With the 1ms test debounce the tick commands
// return almost immediately, so debounced commits arrive synchronously.
func land(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			land(m, c)
		}
		return
	}
	m.Update(msg)
}

// typeAndSettle types a string and lands every debounce commit it arms
func typeAndSettle(m *Model, s string) {
	for _, r := range s {
		land(m, pressRune(m, r))
	}
}

func TestInitialViewShowsFullRoster(t *testing.T) {
	m := newTestModel(t)

	require.True(t, m.field.Focused())
	require.True(t, m.field.DropdownOpen())

	view := m.View()
	require.Contains(t, view, "namepick")
	require.Contains(t, view, "No selected person")
	require.Contains(t, view, "Ada Lovelace")
	require.Contains(t, view, "Alan Turing")
	require.Contains(t, view, "Grace Hopper")
}

func TestTypingCommitsAfterDebounceAndFilters(t *testing.T) {
	m := newTestModel(t)

	typeAndSettle(m, "al")

	require.Equal(t, "al", m.field.Applied())
	require.Len(t, m.field.Visible(), 1)

	view := m.View()
	require.Contains(t, view, "[filter: al]")
	require.Contains(t, view, "1/3")
	require.Contains(t, view, "Alan Turing")
	require.NotContains(t, view, "Grace Hopper")
}

func TestSupersededCommitNeverLands(t *testing.T) {
	m := newTestModel(t)

	// Arm a commit for "a", then supersede it with "al" before landing it
	first := pressRune(m, 'a')
	second := pressRune(m, 'l')

	land(m, first)
	require.Equal(t, "", m.field.Applied(), "superseded commit must not apply")

	land(m, second)
	require.Equal(t, "al", m.field.Applied())
}

func TestEnterSelectsHighlightedCandidate(t *testing.T) {
	m := newTestModel(t)

	picked := make(chan eventbus.DomainEvent, 1)
	unsub := m.bus.Subscribe(eventbus.EventCandidateSelected, func(e eventbus.DomainEvent) {
		picked <- e
	})
	defer unsub()

	typeAndSettle(m, "al")
	press(m, tea.KeyEnter)

	sel, ok := m.field.Selected()
	require.True(t, ok)
	require.Equal(t, "alan-turing", sel.Slug)
	require.False(t, m.field.Focused(), "selection releases focus")
	require.Equal(t, "Alan Turing", m.field.Value())

	view := m.View()
	require.Contains(t, view, "Alan Turing (1912 - 1954)")
	require.Contains(t, m.status, "Selected Alan Turing")

	select {
	case e := <-picked:
		ev, ok := e.(eventbus.CandidateSelectedEvent)
		require.True(t, ok)
		require.Equal(t, "alan-turing", ev.Candidate.Slug)
	case <-time.After(2 * time.Second):
		t.Fatal("no CandidateSelectedEvent published")
	}
}

func TestEditingConfirmedNameClearsSelection(t *testing.T) {
	m := newTestModel(t)

	cleared := make(chan eventbus.DomainEvent, 1)
	unsub := m.bus.Subscribe(eventbus.EventSelectionCleared, func(e eventbus.DomainEvent) {
		cleared <- e
	})
	defer unsub()

	typeAndSettle(m, "al")
	press(m, tea.KeyEnter)
	_, ok := m.field.Selected()
	require.True(t, ok)

	// Refocus and edit one character off the confirmed name
	pressRune(m, 'i')
	press(m, tea.KeyBackspace)

	_, ok = m.field.Selected()
	require.False(t, ok)
	require.Contains(t, m.status, "Selection cleared")
	require.Contains(t, m.View(), "No selected person")

	select {
	case e := <-cleared:
		ev, ok := e.(eventbus.SelectionClearedEvent)
		require.True(t, ok)
		require.Equal(t, "alan-turing", ev.Previous.Slug)
	case <-time.After(2 * time.Second):
		t.Fatal("no SelectionClearedEvent published")
	}
}

func TestEscDismissesThenBlurs(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyEsc)
	require.True(t, m.field.Focused())
	require.False(t, m.field.DropdownOpen())
	require.NotContains(t, m.View(), "Grace Hopper")

	press(m, tea.KeyEsc)
	require.False(t, m.field.Focused())
}

func TestQuitKeyRespectsFocus(t *testing.T) {
	m := newTestModel(t)

	// While focused, q is just text
	cmd := pressRune(m, 'q')
	require.False(t, m.quitting)
	require.Equal(t, "q", m.field.Value())
	if cmd != nil {
		require.NotEqual(t, tea.QuitMsg{}, cmd())
	}

	// Blurred, q quits
	press(m, tea.KeyEsc)
	press(m, tea.KeyEsc)
	cmd = pressRune(m, 'q')
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCtrlCQuitsEvenWhileFocused(t *testing.T) {
	m := newTestModel(t)

	require.True(t, m.field.Focused())
	cmd := press(m, tea.KeyCtrlC)
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRuneWhileBlurredRefocusesAndTypes(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyEsc)
	press(m, tea.KeyEsc)
	require.False(t, m.field.Focused())

	pressRune(m, 'a')
	require.True(t, m.field.Focused())
	require.Equal(t, "a", m.field.Value())
}

func TestConfigReloadAppliesTunables(t *testing.T) {
	m := newTestModel(t)

	next := config.DefaultConfig()
	next.DebounceDelayMs = 50
	next.UISettings.MaxVisibleRows = 2
	next.UISettings.ShowYears = false
	m.Update(ConfigReloadedMsg{Config: next})

	require.Contains(t, m.status, "Configuration reloaded")
	require.Same(t, next, m.config)

	// Two rows now, with an overflow footer and no lifespans
	view := m.View()
	require.Contains(t, view, "Ada Lovelace")
	require.Contains(t, view, "Alan Turing")
	require.NotContains(t, view, "Grace Hopper")
	require.Contains(t, view, "1/3")
	require.NotContains(t, view, "(1815 - 1852)")
}

func TestRosterLoadedEventReplacesCandidates(t *testing.T) {
	m := newTestModel(t)

	m.Update(EventMsg{Event: eventbus.RosterLoadedEvent{
		Source: "people.toml",
		Candidates: []domain.Candidate{
			{Slug: "edsger-dijkstra", Name: "Edsger Dijkstra", Born: 1930, Died: 2002},
			{Slug: "john-mccarthy", Name: "John McCarthy", Born: 1927, Died: 2011},
		},
	}})

	require.Equal(t, 2, m.rosterSize)
	require.Contains(t, m.status, "Loaded 2 people from people.toml")

	view := m.View()
	require.Contains(t, view, "Edsger Dijkstra")
	require.NotContains(t, view, "Ada Lovelace")
}

func TestErrorEventShowsInStatus(t *testing.T) {
	m := newTestModel(t)

	m.Update(EventMsg{Event: eventbus.ErrorEvent{Message: "roster load failed"}})

	require.True(t, m.statusIsError)
	require.Contains(t, m.View(), "roster load failed")
}

func TestPrintOnSelectQuitsAfterPick(t *testing.T) {
	m := newTestModel(t)
	m.SetPrintOnSelect(true)

	typeAndSettle(m, "grace")
	cmd := press(m, tea.KeyEnter)

	require.True(t, m.quitting)
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())

	sel, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "grace-hopper", sel.Slug)
}

func TestHelpKeyIgnoredWithoutProgram(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyEsc)
	press(m, tea.KeyEsc)

	cmd := pressRune(m, '?')
	require.Nil(t, cmd)
	require.False(t, m.inPagerMode)
}
