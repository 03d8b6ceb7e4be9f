package sim

// Player is the user-controlled agent.
type Player struct {
	Pos    Position
	Intent Direction // last requested direction; may be unreachable
}

// NewPlayer creates a player standing on start with no intent.
func NewPlayer(start Position) *Player {
	return &Player{Pos: start}
}

// SetIntent records the requested direction. Reachability is checked on Advance.
func (p *Player) SetIntent(d Direction) {
	p.Intent = d
}

// Advance moves the player one cell along its intent and consumes whatever
// collectible is there. A blocked move leaves both the position and the intent
// unchanged, so the turn is retried on every following tick.
// Returns true if the player moved.
func (p *Player) Advance(g *Grid) bool {
	if p.Intent.IsZero() {
		return false
	}

	next := g.Neighbor(p.Pos, p.Intent)
	if g.IsBlocked(next.Row, next.Col) {
		return false
	}

	p.Pos = next
	g.Consume(next.Row, next.Col)
	return true
}
