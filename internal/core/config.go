package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size, step timing and colors.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second requested from the platform (default 60)
	Timing   Timing
	Theme    Theme
}

// Timing holds the fixed step intervals of the two moving agents.
type Timing struct {
	PlayerStep  time.Duration
	PursuerStep time.Duration
}

// Theme describes how maze tiles are drawn.
type Theme struct {
	Wall        Color
	Collectible Color
	Player      Color
	Pursuer     Color
	Text        Color

	WallGlyph        rune
	CollectibleGlyph rune
	PlayerGlyph      rune
	PursuerGlyph     rune

	// CellWidth is the number of terminal columns one tile occupies.
	CellWidth int
}

// DefaultTheme returns the classic palette: blue walls, white dots,
// a yellow player and a red pursuer.
func DefaultTheme() Theme {
	return Theme{
		Wall:             ColorBlue,
		Collectible:      ColorWhite,
		Player:           ColorYellow,
		Pursuer:          ColorRed,
		Text:             ColorWhite,
		WallGlyph:        '█',
		CollectibleGlyph: '·',
		PlayerGlyph:      '@',
		PursuerGlyph:     'G',
		CellWidth:        2,
	}
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Timing: Timing{
			PlayerStep:  150 * time.Millisecond,
			PursuerStep: 300 * time.Millisecond,
		},
		Theme: DefaultTheme(),
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Remaining int  // Collectibles left on the board
	GameOver  bool // Whether the round has ended
	Won       bool // Whether the round ended with every collectible eaten

	Elapsed time.Duration // Simulated time since the round started
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	Ended bool // The round finished during this step
}
