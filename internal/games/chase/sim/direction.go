package sim

import "fmt"

// Direction is a single grid step expressed as (column delta, row delta).
// The zero value means "no intent" and is never committed as a move.
type Direction struct {
	DCol int
	DRow int
}

// The four cardinal directions plus the empty intent.
var (
	None  = Direction{}
	Down  = Direction{DRow: 1}
	Up    = Direction{DRow: -1}
	Right = Direction{DCol: 1}
	Left  = Direction{DCol: -1}
)

// cardinals is the fixed enumeration order the pursuer uses to break ties.
var cardinals = [4]Direction{Down, Up, Right, Left}

// IsZero reports whether d carries no movement.
func (d Direction) IsZero() bool {
	return d.DCol == 0 && d.DRow == 0
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{DCol: -d.DCol, DRow: -d.DRow}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Down:
		return "down"
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("(%d,%d)", d.DCol, d.DRow)
	}
}

// ParseDirection converts a direction name ("up", "down", "left", "right",
// "none" or empty) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "", "none":
		return None, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return None, fmt.Errorf("sim: unknown direction %q", s)
}

// Key is a logical direction key delivered by the input collaborator.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// DirectionFor maps a logical key to its direction.
// Keys outside the four directions report false.
func DirectionFor(k Key) (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return None, false
}

// Position is a (row, col) grid coordinate.
type Position struct {
	Row int
	Col int
}

// Pos is a convenience constructor for Position.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position one step away in direction d, without wrapping.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// Manhattan returns the Manhattan distance to another position.
func (p Position) Manhattan(other Position) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
