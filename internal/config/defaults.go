package config

import (
	_ "embed"
)

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultChaseConfig returns the default chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Difficulty: DifficultyNormal,
		Timing: TimingConfig{
			PlayerStepMS:  150,
			PursuerStepMS: 300,
			FPS:           60,
		},
		Theme: ThemeConfig{
			CellWidth: 2,
			Colors: ThemeColors{
				Wall:        "blue",
				Collectible: "white",
				Player:      "yellow",
				Pursuer:     "red",
				Text:        "white",
			},
			Glyphs: ThemeGlyphs{
				Wall:        "█",
				Collectible: "·",
				Player:      "@",
				Pursuer:     "G",
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultChaseYAML
}
