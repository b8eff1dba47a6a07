// Package field implements the autocomplete input at the center of the
// application: a text box over a static candidate roster, narrowed by
// case-insensitive substring match after a debounce interval, with a
// dropdown of selectable suggestions.
package field

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"namepick/internal/domain"
	"namepick/internal/ui/logic"
)

// DefaultDelay is the debounce interval used when no other is configured.
const DefaultDelay = 300 * time.Millisecond

// applyMsg carries a debounced query commit back into Update. seq ties
// the commit to the keystroke that armed it; a bumped sequence makes
// older in-flight commits inert, which is the whole cancellation story.
type applyMsg struct {
	seq   int
	query string
}

// Model is the autocomplete field. Create one with New; it is a regular
// bubbletea component driven through Update.
type Model struct {
	input  textinput.Model
	roster []domain.Candidate

	phase    Phase
	applied  string
	selected *domain.Candidate

	// visible memoizes the filter result for (applied, phase, roster);
	// it is refreshed only when one of those changes.
	visible []domain.Candidate
	cursor  int

	seq   int
	delay time.Duration

	maxRows   int
	showYears bool

	onSelect func(domain.Candidate)
	styles   Styles
	keymap   KeyMap
}

// New creates a field over a roster. The field starts blurred; call
// Focus before forwarding key input to it.
func New(roster []domain.Candidate, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a name"

	m := Model{
		input:     ti,
		roster:    roster,
		phase:     PhaseBlurred,
		delay:     DefaultDelay,
		maxRows:   8,
		showYears: true,
		styles:    DefaultStyles(),
		keymap:    DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.input.PromptStyle = m.styles.Prompt
	m.recompute()
	return m
}

// Init satisfies tea.Model; the field only needs the cursor blink
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update drives the field. Key input is consumed only while the field
// has focus; the embedding model routes keys elsewhere when it is blurred.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case applyMsg:
		return m.commit(msg), nil

	case tea.KeyMsg:
		if m.phase == PhaseBlurred {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keymap.Dismiss):
			if m.phase == PhaseSuggesting {
				m.phase = transition(m.phase, eventDismiss)
				return m, nil
			}
			// second esc gives up focus entirely
			return m.Blur(), nil

		case key.Matches(msg, m.keymap.Up):
			if m.phase == PhaseSuggesting {
				m.moveCursor(-1)
			}
			return m, nil

		case key.Matches(msg, m.keymap.Down):
			if m.phase == PhaseSuggesting {
				m.moveCursor(1)
			}
			return m, nil

		case key.Matches(msg, m.keymap.Select):
			if m.phase == PhaseSuggesting && m.cursor < len(m.visible) {
				return m.Select(m.visible[m.cursor]), nil
			}
			return m, nil
		}

		prev := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if v := m.input.Value(); v != prev {
			var debounceCmd tea.Cmd
			m, debounceCmd = m.onTextChange(v)
			return m, tea.Batch(cmd, debounceCmd)
		}
		return m, cmd

	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// onTextChange reacts to the raw value changing. The raw text itself is
// already updated by the time this runs; only the derived state follows.
func (m Model) onTextChange(text string) (Model, tea.Cmd) {
	// editing away from a confirmed name drops the selection
	if m.selected != nil && !namesEqual(text, m.selected.Name) {
		m.selected = nil
	}

	if strings.TrimSpace(text) == "" {
		// an emptied input clears results now, not after the delay
		m.seq++
		m.phase = transition(m.phase, eventClearedText)
		if m.applied != "" {
			m.applied = ""
			m.recompute()
		}
		return m, nil
	}

	m.phase = transition(m.phase, eventTypedText)
	return m, m.armDebounce(text)
}

// armDebounce schedules a commit for text after the quiet interval.
// Bumping seq first makes every previously armed commit stale.
func (m *Model) armDebounce(text string) tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return applyMsg{seq: seq, query: text}
	})
}

// commit lands a debounced query, unless it was superseded or the value
// already applies.
func (m Model) commit(msg applyMsg) Model {
	if msg.seq != m.seq {
		return m
	}
	if msg.query == m.applied {
		return m
	}
	m.applied = msg.query
	m.recompute()
	return m
}

// Focus gives the field keyboard focus and opens the dropdown
func (m Model) Focus() (Model, tea.Cmd) {
	m.phase = transition(m.phase, eventFocus)
	cmd := m.input.Focus()
	m.recompute()
	return m, cmd
}

// Blur takes keyboard focus away and closes the dropdown
func (m Model) Blur() Model {
	m.phase = transition(m.phase, eventBlur)
	m.input.Blur()
	m.recompute()
	return m
}

// Select confirms a candidate: the raw and applied values take its name,
// the dropdown closes, focus is released and onSelect fires exactly once.
func (m Model) Select(c domain.Candidate) Model {
	m.selected = &c
	m.input.SetValue(c.Name)
	m.input.CursorEnd()
	m.input.Blur()
	m.applied = c.Name
	m.seq++ // in-flight commits are now stale
	m.phase = transition(m.phase, eventSelect)
	m.cursor = 0
	m.recompute()
	if m.onSelect != nil {
		m.onSelect(c)
	}
	return m
}

// Cancel invalidates any in-flight debounce commit. Call it when the
// field is being torn down so a late tick cannot mutate reused state.
func (m Model) Cancel() Model {
	m.seq++
	return m
}

// SetRoster replaces the candidate list, keeping query and selection
func (m Model) SetRoster(roster []domain.Candidate) Model {
	m.roster = roster
	m.recompute()
	return m
}

// SetDelay changes the debounce interval for commits armed afterwards
func (m Model) SetDelay(d time.Duration) Model {
	if d > 0 {
		m.delay = d
	}
	return m
}

// SetMaxRows caps how many suggestion rows render at once
func (m Model) SetMaxRows(n int) Model {
	if n > 0 {
		m.maxRows = n
	}
	return m
}

// SetShowYears toggles the lifespan suffix on suggestion rows
func (m Model) SetShowYears(show bool) Model {
	m.showYears = show
	return m
}

// Value returns the raw text as typed
func (m Model) Value() string {
	return m.input.Value()
}

// Applied returns the query the visible set was filtered with
func (m Model) Applied() string {
	return m.applied
}

// Selected returns the confirmed candidate, if any
func (m Model) Selected() (domain.Candidate, bool) {
	if m.selected == nil {
		return domain.Candidate{}, false
	}
	return *m.selected, true
}

// State returns the current focus and dropdown phase
func (m Model) State() Phase {
	return m.phase
}

// Focused reports whether the field has keyboard focus
func (m Model) Focused() bool {
	return m.phase != PhaseBlurred
}

// DropdownOpen reports whether the suggestion region renders
func (m Model) DropdownOpen() bool {
	return m.phase == PhaseSuggesting
}

// Visible returns the memoized filter result. Callers must not mutate it.
func (m Model) Visible() []domain.Candidate {
	return m.visible
}

// CursorIndex returns the highlighted row within Visible
func (m Model) CursorIndex() int {
	return m.cursor
}

// Keys exposes the bindings for help rendering
func (m Model) Keys() KeyMap {
	return m.keymap
}

// View renders the input and, while suggesting, the dropdown region.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	if m.phase != PhaseSuggesting {
		return b.String()
	}

	b.WriteByte('\n')
	if len(m.visible) == 0 {
		b.WriteString(m.styles.NoMatches.Render("No matching suggestions"))
		return b.String()
	}

	start := 0
	if m.cursor >= m.maxRows {
		start = m.cursor - m.maxRows + 1
	}
	end := start + m.maxRows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	rows := make([]string, 0, end-start+1)
	for i := start; i < end; i++ {
		c := m.visible[i]
		var row string
		if i == m.cursor {
			row = m.styles.Cursor.Render("> " + c.Name)
		} else {
			row = m.styles.Suggestion.Render(c.Name)
		}
		if m.showYears {
			row += " " + m.styles.Years.Render(fmt.Sprintf("(%d - %d)", c.Born, c.Died))
		}
		rows = append(rows, row)
	}
	if len(m.visible) > m.maxRows {
		rows = append(rows, m.styles.More.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(m.visible))))
	}
	b.WriteString(strings.Join(rows, "\n"))
	return b.String()
}

func (m *Model) recompute() {
	m.visible = logic.Visible(m.roster, m.applied, m.phase != PhaseBlurred)
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = len(m.visible) - 1
	} else if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// namesEqual compares raw text against a candidate name the way the
// selection rule wants: trimmed and case-insensitive.
func namesEqual(text, name string) bool {
	return strings.EqualFold(strings.TrimSpace(text), strings.TrimSpace(name))
}
