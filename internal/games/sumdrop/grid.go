package sumdrop

// Tile is a single numbered unit occupying one grid cell.
// A zero Value marks an empty cell. ID is only used by renderers to keep
// identity stable across relayouts; game logic never reads it.
type Tile struct {
	ID       int64
	Value    int
	Selected bool
}

// Empty reports whether this cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Grid is the playfield. Row 0 is the top (danger) row, row Rows()-1 the
// bottom (entry) row. Invariant maintained by Collapse: within a column,
// non-empty cells are contiguous starting from the bottom.
type Grid struct {
	rows  int
	cols  int
	cells []Tile
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(rows, cols int) Grid {
	return Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Tile, rows*cols),
	}
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g Grid) Cols() int {
	return g.cols
}

// InBounds reports whether (row, col) addresses a cell.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the tile at (row, col). Out-of-range coordinates yield an
// empty tile.
func (g Grid) At(row, col int) Tile {
	if !g.InBounds(row, col) {
		return Tile{}
	}
	return g.cells[row*g.cols+col]
}

// Set places a tile at (row, col). Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, t Tile) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = t
}

// Clone returns an independent copy of the grid.
// Snapshots hand clones to the renderer so published state stays immutable.
func (g Grid) Clone() Grid {
	c := Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]Tile, len(g.cells)),
	}
	copy(c.cells, g.cells)
	return c
}

// SelectionSum returns the sum of values over all selected tiles,
// scanning the entire grid.
func (g Grid) SelectionSum() int {
	sum := 0
	for _, t := range g.cells {
		if t.Selected {
			sum += t.Value
		}
	}
	return sum
}

// SelectedCount returns how many tiles are currently selected.
func (g Grid) SelectedCount() int {
	n := 0
	for _, t := range g.cells {
		if t.Selected {
			n++
		}
	}
	return n
}

// ClearSelection resets the Selected flag on every tile.
func (g *Grid) ClearSelection() {
	for i := range g.cells {
		g.cells[i].Selected = false
	}
}

// RemoveSelected empties every selected cell and returns how many were removed.
func (g *Grid) RemoveSelected() int {
	removed := 0
	for i := range g.cells {
		if g.cells[i].Selected {
			g.cells[i] = Tile{}
			removed++
		}
	}
	return removed
}

// Collapse applies gravity independently per column: non-empty cells are
// compacted downward preserving their top-to-bottom order, leaving empties
// at the top of the column.
func (g *Grid) Collapse() {
	for col := 0; col < g.cols; col++ {
		writeRow := g.rows - 1
		for row := g.rows - 1; row >= 0; row-- {
			t := g.At(row, col)
			if t.Empty() {
				continue
			}
			if row != writeRow {
				g.Set(writeRow, col, t)
				g.Set(row, col, Tile{})
			}
			writeRow--
		}
	}
}

// TopRowOccupied reports whether the danger row holds any tile.
func (g Grid) TopRowOccupied() bool {
	for col := 0; col < g.cols; col++ {
		if !g.At(0, col).Empty() {
			return true
		}
	}
	return false
}

// ShiftUp moves every row up by one index and replaces the bottom row with
// the given fresh tiles. The caller must check TopRowOccupied first; tiles
// in the top row would be lost.
func (g *Grid) ShiftUp(bottom []Tile) {
	for row := 0; row < g.rows-1; row++ {
		for col := 0; col < g.cols; col++ {
			g.Set(row, col, g.At(row+1, col))
		}
	}
	for col := 0; col < g.cols; col++ {
		var t Tile
		if col < len(bottom) {
			t = bottom[col]
		}
		g.Set(g.rows-1, col, t)
	}
}

// ColumnCompacted reports whether a column satisfies the gravity invariant:
// no empty cell below a filled cell.
func (g Grid) ColumnCompacted(col int) bool {
	seenTile := false
	for row := 0; row < g.rows; row++ {
		t := g.At(row, col)
		if !t.Empty() {
			seenTile = true
		} else if seenTile {
			return false
		}
	}
	return true
}
