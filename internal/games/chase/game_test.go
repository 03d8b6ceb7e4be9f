package chase

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
	"github.com/vovakirdan/tui-chase/internal/games/chase/sim"
	"github.com/vovakirdan/tui-chase/internal/registry"
)

const step = 100 * time.Millisecond

func corridor() mazes.Maze {
	return mazes.Maze{
		ID:   "corridor",
		Name: "Corridor",
		Rows: []string{
			"WWWWWWW",
			"WP...GW",
			"WWWWWWW",
		},
		Heading: "left",
	}
}

// newCorridor returns a corridor round with the given step intervals.
func newCorridor(t *testing.T, playerStep, pursuerStep time.Duration) *Game {
	t.Helper()
	g, err := New(corridor())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	cfg := core.DefaultConfig()
	cfg.Timing = core.Timing{PlayerStep: playerStep, PursuerStep: pursuerStep}
	g.Reset(cfg)
	return g
}

func move(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestBuiltinMazesRegistered(t *testing.T) {
	for _, id := range []string{"arena", "classic", "crossroads"} {
		if !registry.Exists(id) {
			t.Errorf("maze %q is not registered", id)
			continue
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestStepCollectsAndWins(t *testing.T) {
	g := newCorridor(t, step, time.Hour)

	res := g.Step(move(core.ActionRight), step)
	if res.State.Remaining != 2 {
		t.Errorf("Remaining = %d, expected 2", res.State.Remaining)
	}

	// Intent persists without further input.
	g.Step(core.NewInputFrame(), step)
	res = g.Step(core.NewInputFrame(), step)

	if !res.Ended || !res.State.Won || !res.State.GameOver {
		t.Fatalf("Step() = %+v, expected the round to end won", res)
	}
	if res.State.Elapsed != 3*step {
		t.Errorf("Elapsed = %v, expected %v", res.State.Elapsed, 3*step)
	}

	// Finished rounds ignore further frames.
	res = g.Step(move(core.ActionLeft), step)
	if res.Ended || g.Snapshot().Player != sim.Pos(1, 4) {
		t.Errorf("Step() after end = %+v, player %v, expected no change", res, g.Snapshot().Player)
	}
}

func TestStepLost(t *testing.T) {
	g := newCorridor(t, time.Hour, step)

	var res core.StepResult
	for i := range 4 {
		res = g.Step(core.NewInputFrame(), step)
		if i < 3 && res.State.GameOver {
			t.Fatalf("frame %d: round ended early", i)
		}
	}

	if !res.Ended || res.State.Won || !res.State.GameOver {
		t.Errorf("Step() = %+v, expected the round to end lost", res)
	}
	if res.State.Remaining != 3 {
		t.Errorf("Remaining = %d, the pursuer must not eat collectibles", res.State.Remaining)
	}
}

func TestRestart(t *testing.T) {
	g := newCorridor(t, time.Hour, step)

	// Restart is ignored while the round runs.
	g.Step(move(core.ActionRestart), step)
	if g.Snapshot().Pursuer != sim.Pos(1, 4) {
		t.Fatalf("Pursuer = %v, expected (1,4)", g.Snapshot().Pursuer)
	}

	for range 3 {
		g.Step(core.NewInputFrame(), step)
	}
	if !g.State().GameOver {
		t.Fatal("round should be over")
	}

	res := g.Step(move(core.ActionRestart), step)
	if res.State.GameOver || res.State.Elapsed != 0 {
		t.Errorf("Step(restart) = %+v, expected a fresh round", res)
	}
	if g.Snapshot().Pursuer != sim.Pos(1, 5) {
		t.Errorf("Pursuer = %v, expected start (1,5)", g.Snapshot().Pursuer)
	}
}

func TestResetDefaults(t *testing.T) {
	g, err := New(corridor())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	defaults := core.DefaultConfig()
	if g.cfg.Timing != defaults.Timing {
		t.Errorf("Timing = %+v, expected %+v", g.cfg.Timing, defaults.Timing)
	}
	if g.cfg.Theme != defaults.Theme {
		t.Errorf("Theme = %+v, expected the default theme", g.cfg.Theme)
	}
}

func TestNewRejectsInvalidMaze(t *testing.T) {
	m := corridor()
	m.Rows = []string{"WWW", "W.W", "WWW"}

	if _, err := New(m); !errors.Is(err, mazes.ErrNoStart) {
		t.Errorf("New() = %v, expected ErrNoStart", err)
	}
}

func TestRegisterMazes(t *testing.T) {
	valid := corridor()
	valid.ID = "zz-corridor"

	invalid := corridor()
	invalid.ID = "zz-broken"
	invalid.Rows = []string{"WWW"}

	clash := corridor()
	clash.ID = "classic"

	errs := RegisterMazes([]mazes.Maze{valid, invalid, clash})
	if len(errs) != 2 {
		t.Fatalf("RegisterMazes() = %v, expected 2 errors", errs)
	}
	if !errors.Is(errs[1], registry.ErrDuplicate) {
		t.Errorf("errs[1] = %v, expected ErrDuplicate", errs[1])
	}

	g, err := registry.Create("zz-corridor")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Corridor" {
		t.Errorf("Title() = %q, expected Corridor", g.Title())
	}
	if registry.Exists("zz-broken") {
		t.Error("invalid maze should not be registered")
	}
}

func TestDeterminism(t *testing.T) {
	newClassic := func() *Game {
		g, err := registry.Create(mazes.DefaultID)
		if err != nil {
			t.Fatalf("Create() failed: %v", err)
		}
		g.Reset(core.DefaultConfig())
		return g.(*Game)
	}

	g1, g2 := newClassic(), newClassic()
	inputs := map[int]core.Action{0: core.ActionLeft, 9: core.ActionUp, 20: core.ActionRight, 33: core.ActionDown}

	for i := range 120 {
		in := core.NewInputFrame()
		if a, ok := inputs[i]; ok {
			in.Set(a)
		}
		dt := time.Duration(16+i%3) * time.Millisecond
		g1.Step(in, dt)
		g2.Step(in, dt)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestRender(t *testing.T) {
	g := newCorridor(t, step, time.Hour)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// 7 columns of width 2 centered in 80 columns, 3 rows centered below the HUD.
	tests := []struct {
		name  string
		x, y  int
		r     rune
		color core.Color
	}{
		{"wall corner", 33, 11, '█', core.ColorBlue},
		{"wall fill", 34, 11, '█', core.ColorBlue},
		{"player", 35, 12, '@', core.ColorYellow},
		{"collectible", 37, 12, '·', core.ColorWhite},
		{"collectible padding", 38, 12, ' ', core.ColorWhite},
		{"pursuer", 43, 12, 'G', core.ColorRed},
	}

	for _, tc := range tests {
		cell := screen.GetCell(tc.x, tc.y)
		if cell.Rune != tc.r || cell.Color != tc.color {
			t.Errorf("%s: GetCell(%d, %d) = %q %v, expected %q %v", tc.name, tc.x, tc.y, cell.Rune, cell.Color, tc.r, tc.color)
		}
	}

	hud := screen.Row(0)
	if !strings.Contains(hud, "Corridor") || !strings.Contains(hud, "Dots: 3") {
		t.Errorf("HUD = %q, expected title and dot count", hud)
	}
}

func TestRenderOverlays(t *testing.T) {
	won := newCorridor(t, step, time.Hour)
	won.Step(move(core.ActionRight), 3*step)

	lost := newCorridor(t, time.Hour, step)
	lost.Step(core.NewInputFrame(), 4*step)

	tests := []struct {
		name     string
		game     *Game
		expected string
	}{
		{"won", won, "YOU WIN!"},
		{"lost", lost, "GAME OVER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen := core.NewScreen(80, 24)
			tc.game.Render(screen)
			out := screen.String()
			if !strings.Contains(out, tc.expected) {
				t.Errorf("Render() missing %q:\n%s", tc.expected, out)
			}
			if !strings.Contains(out, "Press R to restart") {
				t.Errorf("Render() missing restart hint:\n%s", out)
			}
		})
	}
}

func TestTooSmallPausesRound(t *testing.T) {
	g := newCorridor(t, step, time.Hour)

	g.Resize(10, 4)
	g.Step(move(core.ActionRight), step)
	if g.Snapshot().Player != sim.Pos(1, 1) {
		t.Errorf("Player = %v, expected no movement while the window is too small", g.Snapshot().Player)
	}

	g.Resize(80, 24)
	g.Step(core.NewInputFrame(), step)
	if g.Snapshot().Player != sim.Pos(1, 2) {
		t.Errorf("Player = %v, expected the queued intent to apply after resize", g.Snapshot().Player)
	}
}

func TestResetChecksScreenSize(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		paused bool
	}{
		{"fits", 80, 24, false},
		{"exact fit", 14, 5, false},
		{"too narrow", 13, 5, true},
		{"too short", 14, 4, true},
		{"unknown size", 0, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(corridor())
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			cfg := core.DefaultConfig()
			cfg.ScreenW, cfg.ScreenH = tc.w, tc.h
			cfg.Timing = core.Timing{PlayerStep: step, PursuerStep: time.Hour}
			g.Reset(cfg)

			g.Step(move(core.ActionRight), step)
			moved := g.Snapshot().Player != sim.Pos(1, 1)
			if moved == tc.paused {
				t.Errorf("%dx%d: player moved = %v, expected paused = %v", tc.w, tc.h, moved, tc.paused)
			}
		})
	}
}

func TestRenderDoesNotPause(t *testing.T) {
	g := newCorridor(t, step, time.Hour)

	screen := core.NewScreen(80, 4)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("Render() missing too-small message:\n%s", screen.String())
	}

	g.Step(move(core.ActionRight), step)
	if g.Snapshot().Player != sim.Pos(1, 2) {
		t.Errorf("Player = %v, expected drawing to a small screen to leave the round running", g.Snapshot().Player)
	}
}

func TestStepBeforeReset(t *testing.T) {
	g, err := New(corridor())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	res := g.Step(move(core.ActionRight), step)
	if res.Ended || res.State.GameOver || res.State.Remaining != 3 {
		t.Errorf("Step() before Reset = %+v, expected an idle round with 3 dots", res)
	}
	if snap := g.Snapshot(); !reflect.DeepEqual(snap, sim.Snapshot{}) {
		t.Errorf("Snapshot() before Reset = %+v, expected zero value", snap)
	}
}
