package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventGlyphCopied     EventType = "GlyphCopied"
	EventClipboardFailed EventType = "ClipboardFailed"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchCleared   EventType = "SearchCleared"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the descriptor index has been built
type CatalogLoadedEvent struct {
	Count int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// GlyphCopiedEvent is emitted after a tile was clicked and its glyph handed to the clipboard
type GlyphCopiedEvent struct {
	Glyph string
}

func (e GlyphCopiedEvent) Type() EventType { return EventGlyphCopied }

// ClipboardFailedEvent is emitted when a clipboard write reported an error
type ClipboardFailedEvent struct {
	Glyph string
	Err   error
}

func (e ClipboardFailedEvent) Type() EventType { return EventClipboardFailed }

// SearchCompletedEvent is emitted after a non-empty query was applied to the grid
type SearchCompletedEvent struct {
	Query      string
	MatchCount int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when the query becomes empty
type SearchClearedEvent struct {
	Total int
}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }
