package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	// Title
	help.WriteString(titleStyle.Render("namepick Help"))
	help.WriteString("\n")

	// Query section
	help.WriteString(sectionStyle.Render("Query"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("i, /"), descStyle.Render("Focus the query field")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", keyStyle.Render("type"), descStyle.Render("Filter candidates by substring")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Backspace"), descStyle.Render("Edit the query")))
	help.WriteString("\n")

	// Notes on matching
	noteStyle := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(noteStyle.Render("  Matching is case-insensitive and settles shortly after you stop typing."))
	help.WriteString("\n")

	// Suggestions section
	help.WriteString(sectionStyle.Render("Suggestions"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, ^p/^n"), descStyle.Render("Move the highlight")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Enter"), descStyle.Render("Pick the highlighted person")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("Esc"), descStyle.Render("Hide suggestions, then leave the field")))
	help.WriteString("\n")

	// Other section
	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s           %s\n", keyStyle.Render("q"), descStyle.Render("Quit (while the field is not focused)")))
	help.WriteString(fmt.Sprintf("  %s      %s", keyStyle.Render("Ctrl+C"), descStyle.Render("Quit from anywhere")))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	// Create a reader from the help content string
	reader := strings.NewReader(helpContent)

	// Create oviewer root from the reader
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}

// showHelpCmd renders the help text in the pager and reports the result
func showHelpCmd(ops *HelpOps, renderer *HelpRenderer) tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(renderer.RenderHelpContentPlain())}
	}
}
