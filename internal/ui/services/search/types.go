package search

// State holds search state
type State struct {
	Query      string // raw query as typed
	MatchCount int    // visible tiles after the last filter pass
	Total      int    // tiles in the grid
}
