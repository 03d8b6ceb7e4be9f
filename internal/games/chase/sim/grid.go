// Package sim implements the chase simulation: the maze grid, the player and
// pursuer agents, the round state machine and the dual-cadence tick scheduler.
// It has no terminal or I/O dependencies so it can be driven by any frame source.
package sim

// Grid is the maze: a fixed rows x cols matrix of cells.
// Walls never change; collectibles only ever turn into empty cells.
type Grid struct {
	rows      int
	cols      int
	cells     [][]Cell
	remaining int
}

// NewGrid creates a grid from the given rows. The input is copied.
// Column count is taken from the first row; cells missing from a short row
// read as walls.
func NewGrid(rows [][]Cell) *Grid {
	g := &Grid{rows: len(rows)}
	if g.rows > 0 {
		g.cols = len(rows[0])
	}

	g.cells = make([][]Cell, g.rows)
	for r, row := range rows {
		g.cells[r] = make([]Cell, g.cols)
		for c := range g.cells[r] {
			if c >= len(row) {
				g.cells[r][c] = CellWall
				continue
			}
			g.cells[r][c] = row[c]
			if row[c] == CellCollectible {
				g.remaining++
			}
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the cell at (row, col). Out-of-range coordinates read as walls.
func (g *Grid) At(row, col int) Cell {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return CellWall
	}
	return g.cells[row][col]
}

// IsBlocked reports whether (row, col) cannot be entered.
// Rows outside the grid are always blocked: there is no vertical wrap.
// Columns are expected to be wrapped by the caller (see WrapCol); a column
// that is still out of range is treated as blocked.
func (g *Grid) IsBlocked(row, col int) bool {
	if row < 0 || row >= g.rows {
		return true
	}
	if col < 0 || col >= g.cols {
		return true
	}
	return g.cells[row][col] == CellWall
}

// Consume empties a collectible cell. Any other cell is left untouched.
func (g *Grid) Consume(row, col int) {
	if g.At(row, col) != CellCollectible {
		return
	}
	g.cells[row][col] = CellEmpty
	g.remaining--
}

// HasRemainingCollectibles scans the grid for any collectible.
func (g *Grid) HasRemainingCollectibles() bool {
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == CellCollectible {
				return true
			}
		}
	}
	return false
}

// Remaining returns the number of collectibles not yet consumed.
func (g *Grid) Remaining() int {
	return g.remaining
}

// WrapCol maps a column into [0, cols), implementing the horizontal tunnel.
func (g *Grid) WrapCol(col int) int {
	if g.cols == 0 {
		return col
	}
	col %= g.cols
	if col < 0 {
		col += g.cols
	}
	return col
}

// Neighbor returns the cell one step from p in direction d, with the column wrapped.
func (g *Grid) Neighbor(p Position, d Direction) Position {
	n := p.Add(d)
	n.Col = g.WrapCol(n.Col)
	return n
}

// Cells returns a copy of the grid contents, row by row.
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.rows)
	for r, row := range g.cells {
		out[r] = make([]Cell, len(row))
		copy(out[r], row)
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:      g.rows,
		cols:      g.cols,
		cells:     g.Cells(),
		remaining: g.remaining,
	}
}
