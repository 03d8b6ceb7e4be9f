package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in increasing order of pressure.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParseDifficulty validates a preset name. An empty name means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// stepScale returns the factor applied to the player step as a fraction.
func stepScale(preset DifficultyPreset) (num, den int) {
	switch preset {
	case DifficultyEasy:
		return 4, 3
	case DifficultyHard:
		return 2, 3
	default:
		return 1, 1
	}
}

// ApplyPreset scales the player step by the preset's factor and sets the
// pursuer step to exactly twice the result. Fixed and normal leave the
// configured values untouched.
func ApplyPreset(t TimingConfig, preset DifficultyPreset) TimingConfig {
	num, den := stepScale(preset)
	if num == den {
		return t
	}
	t.PlayerStepMS = max(1, t.PlayerStepMS*num/den)
	t.PursuerStepMS = pursuerRatio * t.PlayerStepMS
	return t
}
