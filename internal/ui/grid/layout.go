package grid

// Layout is a flow arrangement of visible tiles into fixed-width cells
type Layout struct {
	TileWidth int
	Columns   int
	Rows      [][]int // tile indices per row
}

// ComputeLayout flows the visible tile indices left to right into rows of
// width/tileWidth columns (at least one). Hidden tiles take no cell.
func ComputeLayout(visible []int, width, tileWidth int) Layout {
	if tileWidth < 1 {
		tileWidth = 1
	}
	columns := width / tileWidth
	if columns < 1 {
		columns = 1
	}

	l := Layout{TileWidth: tileWidth, Columns: columns}
	for start := 0; start < len(visible); start += columns {
		end := min(start+columns, len(visible))
		l.Rows = append(l.Rows, visible[start:end])
	}
	return l
}

// RowCount returns the number of rows
func (l Layout) RowCount() int {
	return len(l.Rows)
}

// TileAt maps a cell column and a row to the tile drawn there
func (l Layout) TileAt(x, row int) (int, bool) {
	if x < 0 || row < 0 || row >= len(l.Rows) {
		return 0, false
	}
	col := x / l.TileWidth
	if col >= len(l.Rows[row]) {
		return 0, false
	}
	return l.Rows[row][col], true
}
