package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fixed chrome around the grid. The grid starts on line HeaderLines.
const (
	HeaderLines = 3 // title, search box, blank
	FooterLines = 2 // feedback label, key help
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	SearchInput   string // rendered text input
	MatchCount    int
	Total         int
	Grid          string // rendered grid viewport, exactly ViewportHeight lines
	Feedback      string
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	Grid   *GridRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		Grid:   NewGridRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	// Title with right-aligned match count
	logo := r.styles.Title.Render(state.Title)
	count := r.styles.Count.Render(fmt.Sprintf("%d/%d", state.MatchCount, state.Total))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - lipgloss.Width(logo) - lipgloss.Width(count)
	if padding < 2 {
		padding = 2
	}
	content.WriteString(logo + strings.Repeat(" ", padding) + count)
	content.WriteString("\n")

	content.WriteString(r.styles.Prompt.Render("Search: ") + state.SearchInput)
	content.WriteString("\n\n")

	content.WriteString(state.Grid)
	content.WriteString("\n")

	switch {
	case state.StatusMessage != "":
		content.WriteString(r.styles.StatusError.Render(state.StatusMessage))
	case state.Feedback != "":
		content.WriteString(r.styles.Feedback.Render(state.Feedback))
	}
	content.WriteString("\n")

	content.WriteString(r.styles.Help.Render(state.HelpView))

	return content.String()
}
