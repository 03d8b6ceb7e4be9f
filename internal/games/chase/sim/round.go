package sim

// RoundState is the outcome of the current round.
type RoundState uint8

const (
	Running RoundState = iota
	Lost
	Won
)

// Terminal reports whether the round has ended.
func (s RoundState) Terminal() bool {
	return s == Lost || s == Won
}

// String returns the state name.
func (s RoundState) String() string {
	switch s {
	case Running:
		return "running"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Round holds the round state. Transitions are one-way: once Lost or Won the
// state never changes again.
type Round struct {
	state RoundState
}

// State returns the current round state.
func (r *Round) State() RoundState {
	return r.state
}

// CheckCollision ends the round as Lost when player and pursuer share a cell,
// and clears the player's intent so nothing moves afterwards.
func (r *Round) CheckCollision(p *Player, q *Pursuer) {
	if r.state.Terminal() {
		return
	}
	if p.Pos == q.Pos {
		r.state = Lost
		p.SetIntent(None)
	}
}

// CheckWin ends the round as Won once no collectible is left.
func (r *Round) CheckWin(g *Grid) {
	if r.state.Terminal() {
		return
	}
	if !g.HasRemainingCollectibles() {
		r.state = Won
	}
}

// Evaluate runs the collision check and then the win check. Catching the
// pursuer and clearing the maze on the same tick therefore counts as a loss.
func (r *Round) Evaluate(g *Grid, p *Player, q *Pursuer) RoundState {
	r.CheckCollision(p, q)
	r.CheckWin(g)
	return r.state
}
