package sim

import "time"

// Config holds the simulation timing.
type Config struct {
	PlayerStep  time.Duration
	PursuerStep time.Duration
}

// DefaultConfig returns the standard 150ms / 300ms cadences.
func DefaultConfig() Config {
	return Config{
		PlayerStep:  DefaultPlayerStep,
		PursuerStep: DefaultPursuerStep,
	}
}

// Setup describes the initial state of a round.
type Setup struct {
	Cells          [][]Cell
	PlayerStart    Position
	PursuerStart   Position
	PursuerHeading Direction
}

// FrameResult reports what happened during one frame.
type FrameResult struct {
	PlayerTicks  int
	PursuerTicks int
	State        RoundState
	Ended        bool // the round became terminal during this frame
}

// Snapshot is the read-only view handed to the renderer.
type Snapshot struct {
	Frames         uint64
	Elapsed        time.Duration
	Cells          [][]Cell
	Player         Position
	PlayerIntent   Direction
	Pursuer        Position
	PursuerHeading Direction
	Remaining      int
	State          RoundState
	PlayerTicks    uint64
	PursuerTicks   uint64
}

// Simulation owns every piece of round state. It is not safe for concurrent use;
// the frame loop and the input handler must run on the same goroutine.
type Simulation struct {
	grid    *Grid
	player  *Player
	pursuer *Pursuer
	round   Round
	sched   *Scheduler

	frames       uint64
	elapsed      time.Duration
	playerTicks  uint64
	pursuerTicks uint64
}

// New starts a round from setup.
func New(setup Setup, cfg Config) *Simulation {
	return &Simulation{
		grid:    NewGrid(setup.Cells),
		player:  NewPlayer(setup.PlayerStart),
		pursuer: NewPursuer(setup.PursuerStart, setup.PursuerHeading),
		sched:   NewScheduler(cfg.PlayerStep, cfg.PursuerStep),
	}
}

// OnDirectionRequest applies a logical direction key to the player's intent.
// Keys other than the four directions are ignored. Last write wins.
func (s *Simulation) OnDirectionRequest(k Key) {
	if d, ok := DirectionFor(k); ok {
		s.player.SetIntent(d)
	}
}

// Frame advances simulated time by dt. Due player ticks run before due pursuer
// ticks, and the round is evaluated once afterwards. A finished round ignores
// further frames.
func (s *Simulation) Frame(dt time.Duration) FrameResult {
	if s.round.State().Terminal() {
		return FrameResult{State: s.round.State()}
	}
	if dt < 0 {
		dt = 0
	}

	s.frames++
	s.elapsed += dt

	playerTicks, pursuerTicks := s.sched.Advance(dt)
	for range playerTicks {
		s.player.Advance(s.grid)
	}
	for range pursuerTicks {
		s.pursuer.Advance(s.grid, s.player.Pos)
	}
	s.playerTicks += uint64(playerTicks)
	s.pursuerTicks += uint64(pursuerTicks)

	state := s.round.Evaluate(s.grid, s.player, s.pursuer)
	return FrameResult{
		PlayerTicks:  playerTicks,
		PursuerTicks: pursuerTicks,
		State:        state,
		Ended:        state.Terminal(),
	}
}

// State returns the current round state.
func (s *Simulation) State() RoundState {
	return s.round.State()
}

// Grid returns the live grid. Callers must treat it as read-only.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Player returns the player's position.
func (s *Simulation) Player() Position {
	return s.player.Pos
}

// Pursuer returns the pursuer's position.
func (s *Simulation) Pursuer() Position {
	return s.pursuer.Pos
}

// Elapsed returns the simulated time since the round started.
func (s *Simulation) Elapsed() time.Duration {
	return s.elapsed
}

// Snapshot captures the full round state.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Frames:         s.frames,
		Elapsed:        s.elapsed,
		Cells:          s.grid.Cells(),
		Player:         s.player.Pos,
		PlayerIntent:   s.player.Intent,
		Pursuer:        s.pursuer.Pos,
		PursuerHeading: s.pursuer.Heading,
		Remaining:      s.grid.Remaining(),
		State:          s.round.State(),
		PlayerTicks:    s.playerTicks,
		PursuerTicks:   s.pursuerTicks,
	}
}
