package sumdrop

import "testing"

// buildGrid fills a grid from a value matrix; 0 means empty.
func buildGrid(values [][]int) Grid {
	g := NewGrid(len(values), len(values[0]))
	id := int64(0)
	for row := range values {
		for col := range values[row] {
			if values[row][col] != 0 {
				id++
				g.Set(row, col, Tile{ID: id, Value: values[row][col]})
			}
		}
	}
	return g
}

func assertCompacted(t *testing.T, g Grid) {
	t.Helper()
	for col := 0; col < g.Cols(); col++ {
		if !g.ColumnCompacted(col) {
			t.Errorf("column %d has an empty cell below a filled cell", col)
		}
	}
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name     string
		values   [][]int
		expected [][]int
	}{
		{
			name: "single gap drops tile",
			values: [][]int{
				{5},
				{0},
				{3},
			},
			expected: [][]int{
				{0},
				{5},
				{3},
			},
		},
		{
			name: "multiple gaps preserve order",
			values: [][]int{
				{1},
				{0},
				{2},
				{0},
				{3},
			},
			expected: [][]int{
				{0},
				{0},
				{1},
				{2},
				{3},
			},
		},
		{
			name: "columns are independent",
			values: [][]int{
				{4, 0, 7},
				{0, 0, 0},
				{0, 9, 8},
			},
			expected: [][]int{
				{0, 0, 0},
				{0, 0, 7},
				{4, 9, 8},
			},
		},
		{
			name: "already compact is unchanged",
			values: [][]int{
				{0, 0},
				{1, 0},
				{2, 3},
			},
			expected: [][]int{
				{0, 0},
				{1, 0},
				{2, 3},
			},
		},
		{
			name: "empty grid stays empty",
			values: [][]int{
				{0, 0},
				{0, 0},
			},
			expected: [][]int{
				{0, 0},
				{0, 0},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGrid(tc.values)
			g.Collapse()

			for row := range tc.expected {
				for col := range tc.expected[row] {
					got := g.At(row, col).Value
					if got != tc.expected[row][col] {
						t.Errorf("cell (%d,%d) = %d, want %d", row, col, got, tc.expected[row][col])
					}
				}
			}
			assertCompacted(t, g)
		})
	}
}

func TestCollapseKeepsTileIdentity(t *testing.T) {
	g := NewGrid(4, 1)
	g.Set(0, 0, Tile{ID: 7, Value: 5})
	g.Set(2, 0, Tile{ID: 8, Value: 3})

	g.Collapse()

	if got := g.At(2, 0); got.ID != 7 || got.Value != 5 {
		t.Errorf("upper tile should land above lower tile, got %+v", got)
	}
	if got := g.At(3, 0); got.ID != 8 || got.Value != 3 {
		t.Errorf("lower tile should stay at bottom, got %+v", got)
	}
}

func TestSelectionSum(t *testing.T) {
	g := buildGrid([][]int{
		{0, 0},
		{6, 4},
		{2, 9},
	})

	if sum := g.SelectionSum(); sum != 0 {
		t.Errorf("SelectionSum() = %d, want 0 with nothing selected", sum)
	}

	markSelected(&g, 1, 0)
	markSelected(&g, 2, 1)

	if sum := g.SelectionSum(); sum != 15 {
		t.Errorf("SelectionSum() = %d, want 15", sum)
	}
	if n := g.SelectedCount(); n != 2 {
		t.Errorf("SelectedCount() = %d, want 2", n)
	}
}

func markSelected(g *Grid, row, col int) {
	t := g.At(row, col)
	t.Selected = true
	g.Set(row, col, t)
}

func TestClearSelection(t *testing.T) {
	g := buildGrid([][]int{
		{1, 2},
		{3, 4},
	})
	markSelected(&g, 0, 0)
	markSelected(&g, 1, 1)

	g.ClearSelection()

	if g.SelectedCount() != 0 {
		t.Error("ClearSelection should deselect every tile")
	}
	if g.At(0, 0).Value != 1 || g.At(1, 1).Value != 4 {
		t.Error("ClearSelection must not remove tiles")
	}
}

func TestRemoveSelected(t *testing.T) {
	g := buildGrid([][]int{
		{1, 2},
		{3, 4},
	})
	markSelected(&g, 0, 0)
	markSelected(&g, 1, 1)

	removed := g.RemoveSelected()

	if removed != 2 {
		t.Errorf("RemoveSelected() = %d, want 2", removed)
	}
	if !g.At(0, 0).Empty() || !g.At(1, 1).Empty() {
		t.Error("selected cells should be empty after removal")
	}
	if g.At(0, 1).Value != 2 || g.At(1, 0).Value != 3 {
		t.Error("unselected tiles must survive removal")
	}
}

func TestShiftUp(t *testing.T) {
	g := buildGrid([][]int{
		{0, 0},
		{0, 5},
		{6, 7},
	})

	fresh := []Tile{{ID: 100, Value: 1}, {ID: 101, Value: 2}}
	g.ShiftUp(fresh)

	want := [][]int{
		{0, 5},
		{6, 7},
		{1, 2},
	}
	for row := range want {
		for col := range want[row] {
			if got := g.At(row, col).Value; got != want[row][col] {
				t.Errorf("cell (%d,%d) = %d, want %d", row, col, got, want[row][col])
			}
		}
	}
}

func TestTopRowOccupied(t *testing.T) {
	g := buildGrid([][]int{
		{0, 0},
		{1, 2},
	})
	if g.TopRowOccupied() {
		t.Error("empty top row reported as occupied")
	}

	g.Set(0, 1, Tile{ID: 9, Value: 3})
	if !g.TopRowOccupied() {
		t.Error("occupied top row reported as empty")
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, Tile{ID: 1, Value: 5})

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, -1}, {3, 3}} {
		if got := g.At(pos[0], pos[1]); !got.Empty() {
			t.Errorf("At(%d,%d) out of range should be empty, got %+v", pos[0], pos[1], got)
		}
	}

	// Out-of-range Set must be silent
	g.Set(-1, 0, Tile{ID: 2, Value: 1})
	g.Set(3, 3, Tile{ID: 3, Value: 1})
}

func TestCloneIsIndependent(t *testing.T) {
	g := buildGrid([][]int{
		{1, 2},
		{3, 4},
	})

	c := g.Clone()
	c.Set(0, 0, Tile{ID: 99, Value: 9})

	if g.At(0, 0).Value != 1 {
		t.Error("mutating a clone must not affect the original grid")
	}
}
