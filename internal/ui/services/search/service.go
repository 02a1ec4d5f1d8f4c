package search

import (
	"log"

	"emojipick/internal/eventbus"
)

// FilterFunc applies a query to the grid and returns the number of visible tiles
type FilterFunc func(query string) int

// Service tracks the current query and runs the grid filter whenever it changes
type Service struct {
	state    *State
	bus      eventbus.EventBus
	filterFn FilterFunc
}

// NewService creates a new search service over a grid of total tiles
func NewService(bus eventbus.EventBus, total int, filterFn FilterFunc) *Service {
	return &Service{
		state: &State{
			Query:      "",
			MatchCount: total,
			Total:      total,
		},
		bus:      bus,
		filterFn: filterFn,
	}
}

// Update applies a new query. It returns false when the query did not change.
func (s *Service) Update(query string) bool {
	if query == s.state.Query {
		return false
	}

	s.state.Query = query
	if s.filterFn != nil {
		s.state.MatchCount = s.filterFn(query)
	}

	if query == "" {
		s.publish(eventbus.SearchClearedEvent{Total: s.state.Total})
		return true
	}

	log.Printf("Search completed for '%s': found %d matches", query, s.state.MatchCount)
	s.publish(eventbus.SearchCompletedEvent{
		Query:      query,
		MatchCount: s.state.MatchCount,
	})
	return true
}

// Clear resets the query to empty
func (s *Service) Clear() bool {
	return s.Update("")
}

// Query returns the current search query
func (s *Service) Query() string {
	return s.state.Query
}

// MatchCount returns the number of visible tiles
func (s *Service) MatchCount() int {
	return s.state.MatchCount
}

// Total returns the number of tiles
func (s *Service) Total() int {
	return s.state.Total
}

func (s *Service) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
