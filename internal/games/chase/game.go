// Package chase adapts the maze chase simulation to the platform's game
// interface. Every built-in maze registers itself as a separate game.
package chase

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

const hudHeight = 2

// Game is one maze played as a chase round.
type Game struct {
	maze  mazes.Maze
	setup sim.Setup
	cfg   core.RuntimeConfig
	sim   *sim.Simulation

	// The screen cannot hold the maze. Steps are paused until the window
	// grows again.
	tooSmall bool
}

// New creates a game for the maze. The maze is validated here so that a
// successfully created game can always be reset.
func New(m mazes.Maze) (*Game, error) {
	setup, err := mazes.Setup(m)
	if err != nil {
		return nil, err
	}
	return &Game{maze: m, setup: setup}, nil
}

func init() {
	builtin, err := mazes.Builtin()
	if err != nil {
		panic(err)
	}
	for _, m := range builtin {
		registry.Register(m.ID, factory(m))
	}
}

// RegisterMazes adds user mazes to the registry. Mazes that fail validation
// or clash with an existing ID are skipped and reported.
func RegisterMazes(ms []mazes.Maze) []error {
	var errs []error
	for _, m := range ms {
		if _, err := New(m); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := registry.Add(m.ID, factory(m)); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func factory(m mazes.Maze) registry.Factory {
	return func() registry.Game {
		g, err := New(m)
		if err != nil {
			// Mazes are validated before they are registered.
			panic(fmt.Sprintf("chase: maze %q: %v", m.ID, err))
		}
		return g
	}
}

// ID returns the maze identifier.
func (g *Game) ID() string {
	return g.maze.ID
}

// Title returns the maze display name.
func (g *Game) Title() string {
	return g.maze.Title()
}

// Maze returns the maze definition this game plays.
func (g *Game) Maze() mazes.Maze {
	return g.maze
}

// Reset starts a fresh round. Zero timing or theme values fall back to the
// defaults.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	defaults := core.DefaultConfig()
	if cfg.Timing == (core.Timing{}) {
		cfg.Timing = defaults.Timing
	}
	if cfg.Theme == (core.Theme{}) {
		cfg.Theme = defaults.Theme
	}
	g.cfg = cfg
	g.restart()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the size of the screen the game is drawn on. The round is
// paused while the maze does not fit. A zero size means the size is unknown
// and never pauses.
func (g *Game) Resize(screenW, screenH int) {
	g.cfg.ScreenW = screenW
	g.cfg.ScreenH = screenH
	g.tooSmall = screenW > 0 && screenH > 0 && !g.fits(screenW, screenH)
}

func (g *Game) restart() {
	g.sim = sim.New(g.setup, sim.Config{
		PlayerStep:  g.cfg.Timing.PlayerStep,
		PursuerStep: g.cfg.Timing.PursuerStep,
	})
}

// Step applies the frame's input and advances the round by dt.
// Restart is honored only once the round is over.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionRestart) && g.sim.State().Terminal() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if key, ok := directionKeys[in.Move]; ok {
		g.sim.OnDirectionRequest(key)
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	res := g.sim.Frame(dt)
	return core.StepResult{State: g.State(), Ended: res.Ended}
}

var directionKeys = map[core.Action]sim.Key{
	core.ActionUp:    sim.KeyUp,
	core.ActionDown:  sim.KeyDown,
	core.ActionLeft:  sim.KeyLeft,
	core.ActionRight: sim.KeyRight,
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Remaining: g.maze.Collectibles()}
	}
	state := g.sim.State()
	return core.GameState{
		Remaining: g.sim.Grid().Remaining(),
		GameOver:  state.Terminal(),
		Won:       state == sim.Won,
		Elapsed:   g.sim.Elapsed(),
	}
}

// Snapshot returns the full round state for tests and diagnostics.
func (g *Game) Snapshot() sim.Snapshot {
	if g.sim == nil {
		return sim.Snapshot{}
	}
	return g.sim.Snapshot()
}
