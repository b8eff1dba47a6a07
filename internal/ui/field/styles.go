package field

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the field and its dropdown
type Styles struct {
	Prompt     lipgloss.Style
	Suggestion lipgloss.Style
	Cursor     lipgloss.Style
	Years      lipgloss.Style
	NoMatches  lipgloss.Style
	More       lipgloss.Style
}

// DefaultStyles returns the stock look of the dropdown
func DefaultStyles() Styles {
	return Styles{
		Prompt:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Suggestion: lipgloss.NewStyle().PaddingLeft(2),
		Cursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		Years:     lipgloss.NewStyle().Faint(true),
		NoMatches: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		More:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}
