package grid

import (
	"strings"

	"emojipick/internal/domain"
)

// NormalizeQuery lowercases a raw query. Descriptor keywords are stored lowercased,
// so comparing the two is case-insensitive.
func NormalizeQuery(query string) string {
	return strings.ToLower(query)
}

// Matches reports whether keywords contain the normalized query as a plain substring
func Matches(keywords, normalizedQuery string) bool {
	return strings.Contains(keywords, normalizedQuery)
}

// ApplyFilter sets tile visibility from the query and returns the number of visible tiles.
//
// An empty query shows every tile without looking at the descriptors. Otherwise tile i
// is visible iff descriptor i matches; only the first min(len(descriptors), len(tiles))
// pairs are touched, anything past that keeps its previous state.
func ApplyFilter(descriptors []domain.Descriptor, tiles []*Tile, query string) int {
	q := NormalizeQuery(query)

	if q == "" {
		for _, t := range tiles {
			t.SetVisible(true)
		}
		return len(tiles)
	}

	n := min(len(descriptors), len(tiles))
	for i := 0; i < n; i++ {
		tiles[i].SetVisible(Matches(descriptors[i].Keywords, q))
	}

	visible := 0
	for _, t := range tiles {
		if t.Visible() {
			visible++
		}
	}
	return visible
}
