package sim

// Cell is the content of a single maze tile.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellCollectible
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	case CellCollectible:
		return "collectible"
	default:
		return "unknown"
	}
}
