package state

// AppState contains the picker's UI state that is not owned by widgets
type AppState struct {
	// Terminal dimensions
	Width  int
	Height int

	// Grid viewport
	ViewportHeight int // rows available for the grid
	GridRows       int // rows in the current layout

	// Search state mirrored from the search service for rendering
	Query      string
	MatchCount int
	Total      int

	// Feedback label: confirmation for the last copied glyph
	Feedback   string
	LastCopied string

	// StatusMessage reports problems that do not belong in the feedback label
	StatusMessage string
}

// NewAppState creates a new application state for a grid of total tiles
func NewAppState(total int) *AppState {
	return &AppState{
		Total:      total,
		MatchCount: total,
	}
}

// SetDimensions records the terminal size and derives the grid viewport height
func (s *AppState) SetDimensions(width, height, chrome int) {
	s.Width = width
	s.Height = height
	s.ViewportHeight = height - chrome
	if s.ViewportHeight < 1 {
		s.ViewportHeight = 1
	}
}

// SetCopied records a copy and the confirmation text shown for it
func (s *AppState) SetCopied(glyph, feedback string) {
	s.LastCopied = glyph
	s.Feedback = feedback
}
