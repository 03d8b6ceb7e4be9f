// Package mazes defines the maze text format, validates maze definitions and
// loads them from YAML files or the built-in set.
package mazes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
)

// Layout symbols.
const (
	SymbolWall        = 'W'
	SymbolCollectible = '.'
	SymbolEmpty       = ' '
	SymbolPlayer      = 'P'
	SymbolPursuer     = 'G'
)

// Validation errors. Validate wraps these so callers can match with errors.Is.
var (
	ErrEmptyMaze      = errors.New("maze has no rows")
	ErrRaggedRows     = errors.New("rows have different lengths")
	ErrUnknownSymbol  = errors.New("unknown symbol")
	ErrNoStart        = errors.New("no player start")
	ErrMultipleStarts = errors.New("more than one player start")
	ErrPursuerStart   = errors.New("invalid pursuer start")
	ErrHeading        = errors.New("invalid pursuer heading")
	ErrOpenBorder     = errors.New("open cell on top or bottom border")
)

// Spawn is an explicit start cell.
type Spawn struct {
	Row int
	Col int
}

// Maze is a maze definition as written by its author.
type Maze struct {
	ID      string
	Name    string
	Rows    []string
	Pursuer *Spawn // explicit pursuer start, used when the layout has no G marker
	Heading string // initial pursuer heading: up, down, left, right or none
	// FilePath is empty for built-in mazes.
	FilePath string
}

// Size returns the maze dimensions.
func (m Maze) Size() (rows, cols int) {
	if len(m.Rows) == 0 {
		return 0, 0
	}
	return len(m.Rows), len(m.Rows[0])
}

// Collectibles counts the collectible symbols in the layout.
func (m Maze) Collectibles() int {
	n := 0
	for _, row := range m.Rows {
		n += strings.Count(row, string(SymbolCollectible))
	}
	return n
}

// Title returns the display name, falling back to the ID.
func (m Maze) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Validate checks the maze for every structural problem and returns them
// joined. A nil result means Setup will succeed.
func Validate(m Maze) error {
	if len(m.Rows) == 0 {
		return ErrEmptyMaze
	}

	var errs []error
	cols := len(m.Rows[0])
	var starts, pursuers []sim.Position

	for r, row := range m.Rows {
		if len(row) != cols {
			errs = append(errs, fmt.Errorf("row %d has %d columns, expected %d: %w", r, len(row), cols, ErrRaggedRows))
		}
		for c, ch := range []byte(row) {
			switch ch {
			case SymbolWall, SymbolCollectible, SymbolEmpty:
			case SymbolPlayer:
				starts = append(starts, sim.Pos(r, c))
			case SymbolPursuer:
				pursuers = append(pursuers, sim.Pos(r, c))
			default:
				errs = append(errs, fmt.Errorf("%q at (%d,%d): %w", ch, r, c, ErrUnknownSymbol))
			}
		}
	}

	switch {
	case len(starts) == 0:
		errs = append(errs, ErrNoStart)
	case len(starts) > 1:
		errs = append(errs, fmt.Errorf("%d markers: %w", len(starts), ErrMultipleStarts))
	}

	for _, r := range []int{0, len(m.Rows) - 1} {
		if i := strings.IndexFunc(m.Rows[r], func(ch rune) bool { return ch != SymbolWall }); i >= 0 {
			errs = append(errs, fmt.Errorf("(%d,%d): %w", r, i, ErrOpenBorder))
		}
	}

	if err := validatePursuer(m, starts, pursuers); err != nil {
		errs = append(errs, err)
	}
	if _, err := sim.ParseDirection(m.Heading); err != nil {
		errs = append(errs, fmt.Errorf("%q: %w", m.Heading, ErrHeading))
	}

	return errors.Join(errs...)
}

// validatePursuer checks that exactly one pursuer start exists, on an open
// cell distinct from the player's start.
func validatePursuer(m Maze, starts, markers []sim.Position) error {
	var pos sim.Position
	switch {
	case len(markers) > 1:
		return fmt.Errorf("%d G markers: %w", len(markers), ErrPursuerStart)
	case len(markers) == 1 && m.Pursuer != nil:
		return fmt.Errorf("both a G marker and an explicit start: %w", ErrPursuerStart)
	case len(markers) == 1:
		pos = markers[0]
	case m.Pursuer != nil:
		pos = sim.Pos(m.Pursuer.Row, m.Pursuer.Col)
	default:
		return fmt.Errorf("missing: %w", ErrPursuerStart)
	}

	if pos.Row < 0 || pos.Row >= len(m.Rows) || pos.Col < 0 || pos.Col >= len(m.Rows[pos.Row]) {
		return fmt.Errorf("%v outside the maze: %w", pos, ErrPursuerStart)
	}
	if m.Rows[pos.Row][pos.Col] == SymbolWall {
		return fmt.Errorf("%v is a wall: %w", pos, ErrPursuerStart)
	}
	if len(starts) == 1 && starts[0] == pos {
		return fmt.Errorf("%v is the player start: %w", pos, ErrPursuerStart)
	}
	return nil
}

// Setup validates the maze and converts it into a simulation setup. Start
// markers become empty cells.
func Setup(m Maze) (sim.Setup, error) {
	if err := Validate(m); err != nil {
		return sim.Setup{}, fmt.Errorf("mazes: %s: %w", m.ID, err)
	}

	heading, _ := sim.ParseDirection(m.Heading)
	setup := sim.Setup{
		Cells:          make([][]sim.Cell, len(m.Rows)),
		PursuerHeading: heading,
	}
	if m.Pursuer != nil {
		setup.PursuerStart = sim.Pos(m.Pursuer.Row, m.Pursuer.Col)
	}

	for r, row := range m.Rows {
		setup.Cells[r] = make([]sim.Cell, len(row))
		for c, ch := range []byte(row) {
			switch ch {
			case SymbolWall:
				setup.Cells[r][c] = sim.CellWall
			case SymbolCollectible:
				setup.Cells[r][c] = sim.CellCollectible
			case SymbolPlayer:
				setup.PlayerStart = sim.Pos(r, c)
			case SymbolPursuer:
				setup.PursuerStart = sim.Pos(r, c)
			}
		}
	}
	return setup, nil
}
