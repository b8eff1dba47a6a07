package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"namepick/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Selected      *domain.Candidate
	FieldView     string
	AppliedQuery  string
	MatchCount    int
	RosterSize    int
	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// SelectionTitle renders the title region: the confirmed candidate's
// name and lifespan, or the placeholder when nothing is confirmed yet.
func (r *Renderer) SelectionTitle(selected *domain.Candidate) string {
	if selected == nil {
		return r.styles.NoPick.Render("No selected person")
	}
	return r.styles.Selection.Render(selected.Label())
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title line with the applied filter right-aligned
	logo := r.styles.Title.Render("namepick")
	titleLine := logo
	if state.AppliedQuery != "" {
		right := r.styles.Filter.Render(fmt.Sprintf("[filter: %s]", state.AppliedQuery)) +
			" " + r.styles.Dim.Render(fmt.Sprintf("%d/%d", state.MatchCount, state.RosterSize))
		pad := state.Width - lipgloss.Width(logo) - lipgloss.Width(right) - 4
		if pad > 0 {
			titleLine = logo + strings.Repeat(" ", pad) + right
		} else {
			titleLine = logo + "  " + right
		}
	}
	content.WriteString(titleLine)
	content.WriteString("\n\n")

	content.WriteString(r.SelectionTitle(state.Selected))
	content.WriteString("\n\n")

	content.WriteString(state.FieldView)
	content.WriteString("\n")

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.Error
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	if state.HelpView != "" {
		content.WriteString("\n\n")
		content.WriteString(state.HelpView)
	}

	return r.styles.Main.Render(content.String())
}
