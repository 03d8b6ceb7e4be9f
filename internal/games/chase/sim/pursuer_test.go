package sim

import "testing"

// classicRows is the standard 15x19 maze with the tunnel on row 7.
var classicRows = []string{
	"WWWWWWWWWWWWWWWWWWW",
	"W........W........W",
	"W.WWWW.W.W.W.WWWW.W",
	"W.W  W.W...W.W  W.W",
	"W.WWWW.W   W.WWWW.W",
	"W.................W",
	"WWWWW.WWW WWW.WWWWW",
	"                   ",
	"WWWWW.WWWWWWW.WWWWW",
	"W........W........W",
	"W.WWWW.W.W.W.WWWW.W",
	"W... W.W...W.W ...W",
	"W.WWWW.W.W.W.WWWW.W",
	"W.................W",
	"WWWWWWWWWWWWWWWWWWW",
}

func TestDecideEnclosed(t *testing.T) {
	g := gridFrom(
		"WWW",
		"W W",
		"WWW",
	)

	if dir, ok := Decide(g, Pos(1, 1), Up, Pos(0, 0)); ok {
		t.Errorf("Decide() = %v, expected no move", dir)
	}

	q := NewPursuer(Pos(1, 1), Up)
	if q.Advance(g, Pos(0, 0)) {
		t.Error("enclosed pursuer moved")
	}
	if q.Pos != Pos(1, 1) || q.Heading != Up {
		t.Errorf("enclosed pursuer changed state: pos %v heading %v", q.Pos, q.Heading)
	}
}

func TestDecideAvoidsReversal(t *testing.T) {
	g := gridFrom(
		"WWWWWWW",
		"W     W",
		"WWWWWWW",
	)

	// Heading right with the target behind: reversing would be closer,
	// but the pursuer keeps going.
	dir, ok := Decide(g, Pos(1, 3), Right, Pos(1, 1))
	if !ok {
		t.Fatal("Decide() found no direction")
	}
	if dir != Right {
		t.Errorf("Decide() = %v, expected right (no reversal)", dir)
	}
}

func TestDecideDeadEndReverses(t *testing.T) {
	g := gridFrom(
		"WWWWW",
		"W   W",
		"WWWWW",
	)

	dir, ok := Decide(g, Pos(1, 3), Right, Pos(1, 3))
	if !ok {
		t.Fatal("Decide() found no direction")
	}
	if dir != Left {
		t.Errorf("Decide() = %v, expected left out of the dead end", dir)
	}
}

func TestDecideMinimizesDistance(t *testing.T) {
	g := gridFrom(
		"WWWWW",
		"W   W",
		"W   W",
		"W   W",
		"WWWWW",
	)

	tests := []struct {
		name     string
		target   Position
		expected Direction
	}{
		{"target below", Pos(3, 2), Down},
		{"target above", Pos(1, 2), Up},
		{"target right", Pos(2, 3), Right},
		{"target left", Pos(2, 1), Left},
		{"tie down/right picks down", Pos(3, 3), Down},
		{"tie up/left picks up", Pos(1, 1), Up},
		{"all tied picks down", Pos(2, 2), Down},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir, ok := Decide(g, Pos(2, 2), None, tc.target)
			if !ok {
				t.Fatal("Decide() found no direction")
			}
			if dir != tc.expected {
				t.Errorf("Decide() = %v, expected %v", dir, tc.expected)
			}
		})
	}
}

func TestDecideUsesRawManhattan(t *testing.T) {
	g := gridFrom(
		"WWWWWWW",
		"       ",
		"WWWWWWW",
	)

	// Target is one step away through the tunnel but the distance is not
	// wrapped, so the pursuer walks the long way.
	dir, ok := Decide(g, Pos(1, 1), None, Pos(1, 6))
	if !ok {
		t.Fatal("Decide() found no direction")
	}
	if dir != Right {
		t.Errorf("Decide() = %v, expected right", dir)
	}
}

func TestPursuerTunnelWrap(t *testing.T) {
	g := gridFrom(
		"WWWWWWW",
		"   .   ",
		"WWWWWWW",
	)
	q := NewPursuer(Pos(1, 0), Left)

	if !q.Advance(g, Pos(1, 5)) {
		t.Fatal("Advance() did not move")
	}
	if q.Pos != Pos(1, 6) {
		t.Errorf("Pos = %v, expected (1,6) through the tunnel", q.Pos)
	}
	if q.Heading != Left {
		t.Errorf("Heading = %v, expected left", q.Heading)
	}
}

func TestPursuerDoesNotConsume(t *testing.T) {
	g := gridFrom(
		"WWWW",
		"W..W",
		"WWWW",
	)
	q := NewPursuer(Pos(1, 1), None)
	q.Advance(g, Pos(1, 2))

	if g.Remaining() != 2 {
		t.Errorf("Remaining() = %d, pursuer should not consume", g.Remaining())
	}
}

func TestDecideInvariantsOnClassicMaze(t *testing.T) {
	g := gridFrom(classicRows...)
	headings := []Direction{None, Down, Up, Right, Left}
	targets := []Position{Pos(1, 1), Pos(7, 9), Pos(13, 17), Pos(3, 3), Pos(7, 0)}

	for r := range g.Rows() {
		for c := range g.Cols() {
			if g.IsBlocked(r, c) {
				continue
			}
			from := Pos(r, c)
			open := OpenDirections(g, from)

			for _, heading := range headings {
				for _, target := range targets {
					dir, ok := Decide(g, from, heading, target)
					if !ok {
						t.Fatalf("Decide(%v) found no direction in an open maze", from)
					}

					next := g.Neighbor(from, dir)
					if g.IsBlocked(next.Row, next.Col) {
						t.Errorf("Decide(%v, %v) = %v leads into a wall", from, heading, dir)
					}
					if len(open) > 1 && !heading.IsZero() && dir == heading.Reverse() {
						t.Errorf("Decide(%v, %v) reversed with %d open directions", from, heading, len(open))
					}
				}
			}
		}
	}
}
