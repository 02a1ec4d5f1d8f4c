package grid

// Tile is the visual element for one descriptor. Visibility is its only mutable state.
type Tile struct {
	Glyph   string
	visible bool
	onClick func(glyph string)
}

func newTile(glyph string, onClick func(string)) *Tile {
	return &Tile{Glyph: glyph, visible: true, onClick: onClick}
}

// Visible reports whether the tile is currently shown
func (t *Tile) Visible() bool {
	return t.visible
}

// SetVisible shows or hides the tile
func (t *Tile) SetVisible(v bool) {
	t.visible = v
}

// Click runs the bound action with this tile's glyph, whether or not the tile is visible
func (t *Tile) Click() {
	if t.onClick != nil {
		t.onClick(t.Glyph)
	}
}
