package sim

import "time"

// Default step intervals. The pursuer moves at half the player's rate.
const (
	DefaultPlayerStep  = 150 * time.Millisecond
	DefaultPursuerStep = 300 * time.Millisecond
)

// Scheduler converts wall-clock frame deltas into whole agent ticks using two
// independent fixed-step accumulators. The cadences are not phase-aligned.
type Scheduler struct {
	playerStep  time.Duration
	pursuerStep time.Duration
	playerAcc   time.Duration
	pursuerAcc  time.Duration
}

// NewScheduler creates a scheduler with the given step intervals.
// A non-positive interval disables that agent's ticks.
func NewScheduler(playerStep, pursuerStep time.Duration) *Scheduler {
	return &Scheduler{
		playerStep:  playerStep,
		pursuerStep: pursuerStep,
	}
}

// Advance adds dt to both accumulators and returns how many player and
// pursuer ticks are due. Large deltas yield several ticks; nothing is clamped.
func (s *Scheduler) Advance(dt time.Duration) (playerTicks, pursuerTicks int) {
	if dt < 0 {
		dt = 0
	}
	s.playerAcc += dt
	s.pursuerAcc += dt

	playerTicks = drain(&s.playerAcc, s.playerStep)
	pursuerTicks = drain(&s.pursuerAcc, s.pursuerStep)
	return playerTicks, pursuerTicks
}

// Pending returns the time accumulated toward the next player and pursuer tick.
func (s *Scheduler) Pending() (player, pursuer time.Duration) {
	return s.playerAcc, s.pursuerAcc
}

// drain subtracts step from acc for as long as acc has reached it.
func drain(acc *time.Duration, step time.Duration) int {
	if step <= 0 {
		return 0
	}
	n := 0
	for *acc >= step {
		*acc -= step
		n++
	}
	return n
}
