package sim

// Pursuer is the chasing agent. Heading is the direction it last moved in.
type Pursuer struct {
	Pos     Position
	Heading Direction
}

// NewPursuer creates a pursuer at start facing heading.
func NewPursuer(start Position, heading Direction) *Pursuer {
	return &Pursuer{Pos: start, Heading: heading}
}

// Advance runs one decision step toward target and moves.
// An enclosed pursuer stays where it is. Returns true if it moved.
func (p *Pursuer) Advance(g *Grid, target Position) bool {
	dir, ok := Decide(g, p.Pos, p.Heading, target)
	if !ok {
		return false
	}
	p.Heading = dir
	p.Pos = g.Neighbor(p.Pos, dir)
	return true
}

// Decide picks the pursuer's next direction from 'from' while heading in
// 'heading'. The pipeline is: open directions, minus the reversal when there is
// any alternative, scored by Manhattan distance from the resulting cell to
// target. Ties go to the earliest direction in down, up, right, left order.
// Returns false when every direction is blocked.
func Decide(g *Grid, from Position, heading Direction, target Position) (Direction, bool) {
	open := OpenDirections(g, from)
	if len(open) == 0 {
		return None, false
	}
	return nearest(g, from, withoutReversal(open, heading), target), true
}

// OpenDirections lists the cardinal directions whose (column-wrapped) target
// cell is not blocked, in enumeration order.
func OpenDirections(g *Grid, from Position) []Direction {
	open := make([]Direction, 0, len(cardinals))
	for _, d := range cardinals {
		n := g.Neighbor(from, d)
		if !g.IsBlocked(n.Row, n.Col) {
			open = append(open, d)
		}
	}
	return open
}

// withoutReversal drops the reverse of heading from a set with more than one
// option. A dead end keeps its only exit even when that exit is a reversal.
func withoutReversal(options []Direction, heading Direction) []Direction {
	if len(options) <= 1 {
		return options
	}

	back := heading.Reverse()
	kept := make([]Direction, 0, len(options))
	for _, d := range options {
		if d != back {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		return options
	}
	return kept
}

// nearest returns the option whose resulting cell is closest to target.
// Strict comparison keeps the earliest option on ties.
func nearest(g *Grid, from Position, options []Direction, target Position) Direction {
	best := options[0]
	bestDist := g.Neighbor(from, best).Manhattan(target)
	for _, d := range options[1:] {
		if dist := g.Neighbor(from, d).Manhattan(target); dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
