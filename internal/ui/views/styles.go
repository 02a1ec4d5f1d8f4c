package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Count       lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Feedback    lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	LastCopied  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Count:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:         lipgloss.NewStyle().Faint(true),
		Feedback:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		LastCopied:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
	}
}
