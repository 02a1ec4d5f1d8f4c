package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"emojipick/internal/ui/grid"
)

// GridRenderer draws a flow layout of tiles, one terminal line per row
type GridRenderer struct {
	styles *Styles
}

// NewGridRenderer creates a new grid renderer
func NewGridRenderer(styles *Styles) *GridRenderer {
	return &GridRenderer{styles: styles}
}

// RenderTile pads a glyph to exactly width cells. Widths are measured by
// grapheme cluster, the way lipgloss and the bubbletea renderer measure them,
// so VS16 and ZWJ sequences count as two cells.
func RenderTile(glyph string, width int) string {
	w := ansi.StringWidth(glyph)
	if w > width {
		glyph = ansi.Truncate(glyph, width, "")
		w = ansi.StringWidth(glyph)
	}
	return glyph + strings.Repeat(" ", width-w)
}

// Render returns the grid content; glyph returns the glyph of a tile index
func (gr *GridRenderer) Render(layout grid.Layout, glyph func(int) string, lastCopied string) string {
	if layout.RowCount() == 0 {
		return gr.styles.Dim.Render("No matching emoji")
	}

	lines := make([]string, 0, layout.RowCount())
	var b strings.Builder
	for _, row := range layout.Rows {
		b.Reset()
		for _, idx := range row {
			g := glyph(idx)
			cell := RenderTile(g, layout.TileWidth)
			if lastCopied != "" && g == lastCopied {
				cell = gr.styles.LastCopied.Render(cell)
			}
			b.WriteString(cell)
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}
