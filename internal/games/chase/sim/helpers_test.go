package sim

// gridRows converts maze text (W wall, . collectible, anything else empty)
// into cell rows.
func gridRows(rows ...string) [][]Cell {
	out := make([][]Cell, len(rows))
	for r, row := range rows {
		out[r] = make([]Cell, len(row))
		for c, ch := range row {
			switch ch {
			case 'W':
				out[r][c] = CellWall
			case '.':
				out[r][c] = CellCollectible
			default:
				out[r][c] = CellEmpty
			}
		}
	}
	return out
}

func gridFrom(rows ...string) *Grid {
	return NewGrid(gridRows(rows...))
}
