// Package grid holds the picker's tiles and keeps their visibility in sync with the search query.
package grid

import (
	"fmt"

	"emojipick/internal/domain"
)

// Grid pairs descriptor i with tile i for its whole lifetime
type Grid struct {
	descriptors []domain.Descriptor
	tiles       []*Tile
}

// New creates one visible tile per descriptor, in descriptor order, each bound to onClick
func New(descriptors []domain.Descriptor, onClick func(glyph string)) *Grid {
	tiles := make([]*Tile, 0, len(descriptors))
	for _, d := range descriptors {
		tiles = append(tiles, newTile(d.Glyph, onClick))
	}

	if len(tiles) != len(descriptors) {
		panic(fmt.Sprintf("grid: %d tiles for %d descriptors", len(tiles), len(descriptors)))
	}

	return &Grid{descriptors: descriptors, tiles: tiles}
}

// Len returns the number of tiles
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Tile returns tile i
func (g *Grid) Tile(i int) *Tile {
	return g.tiles[i]
}

// Descriptor returns the descriptor paired with tile i
func (g *Grid) Descriptor(i int) domain.Descriptor {
	return g.descriptors[i]
}

// Filter applies the query to every tile and returns how many are visible
func (g *Grid) Filter(query string) int {
	return ApplyFilter(g.descriptors, g.tiles, query)
}

// VisibleIndices lists the indices of visible tiles in tile order
func (g *Grid) VisibleIndices() []int {
	visible := make([]int, 0, len(g.tiles))
	for i, t := range g.tiles {
		if t.Visible() {
			visible = append(visible, i)
		}
	}
	return visible
}

// Click clicks tile i; out-of-range indices are ignored
func (g *Grid) Click(i int) bool {
	if i < 0 || i >= len(g.tiles) {
		return false
	}
	g.tiles[i].Click()
	return true
}
