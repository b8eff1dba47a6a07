package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Selection lipgloss.Style
	NoPick    lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Filter    lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Selection: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("78")), // green
		NoPick: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:   lipgloss.NewStyle().Faint(true),
		Main:   lipgloss.NewStyle().Padding(1, 2),
	}
}
