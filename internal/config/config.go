// Package config provides YAML-based configuration loading and difficulty
// presets for the chase game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-chase/internal/core"
)

// ChaseConfig contains all configuration for the chase game.
type ChaseConfig struct {
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
	Theme      ThemeConfig      `yaml:"theme"`
	Mazes      MazesConfig      `yaml:"mazes"`
}

// TimingConfig defines the step cadences and the frame rate.
type TimingConfig struct {
	PlayerStepMS  int `yaml:"player_step_ms"`
	PursuerStepMS int `yaml:"pursuer_step_ms"`
	FPS           int `yaml:"fps"`
}

// ThemeConfig defines how tiles are drawn.
type ThemeConfig struct {
	CellWidth int         `yaml:"cell_width"`
	Colors    ThemeColors `yaml:"colors"`
	Glyphs    ThemeGlyphs `yaml:"glyphs"`
}

// ThemeColors holds color names understood by core.ParseColor.
type ThemeColors struct {
	Wall        string `yaml:"wall"`
	Collectible string `yaml:"collectible"`
	Player      string `yaml:"player"`
	Pursuer     string `yaml:"pursuer"`
	Text        string `yaml:"text"`
}

// ThemeGlyphs holds one-character glyphs for each tile kind.
type ThemeGlyphs struct {
	Wall        string `yaml:"wall"`
	Collectible string `yaml:"collectible"`
	Player      string `yaml:"player"`
	Pursuer     string `yaml:"pursuer"`
}

// MazesConfig points at user maze files.
type MazesConfig struct {
	Dir string `yaml:"dir"`
}

// pursuerRatio is how many times longer the pursuer step is than the
// player step.
const pursuerRatio = 2

// PlayerStep returns the player step interval.
func (t TimingConfig) PlayerStep() time.Duration {
	return time.Duration(t.PlayerStepMS) * time.Millisecond
}

// PursuerStep returns the pursuer step interval.
func (t TimingConfig) PursuerStep() time.Duration {
	return time.Duration(t.PursuerStepMS) * time.Millisecond
}

// Validate reports every invalid setting.
func (c ChaseConfig) Validate() error {
	var errs []error
	if c.Timing.PlayerStepMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.player_step_ms must be positive, got %d", c.Timing.PlayerStepMS))
	}
	if c.Timing.PursuerStepMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.pursuer_step_ms must be positive, got %d", c.Timing.PursuerStepMS))
	} else if c.Timing.PlayerStepMS > 0 && c.Timing.PursuerStepMS != pursuerRatio*c.Timing.PlayerStepMS {
		errs = append(errs, fmt.Errorf("timing.pursuer_step_ms must be %d times player_step_ms (%d), got %d",
			pursuerRatio, pursuerRatio*c.Timing.PlayerStepMS, c.Timing.PursuerStepMS))
	}
	if c.Timing.FPS <= 0 {
		errs = append(errs, fmt.Errorf("timing.fps must be positive, got %d", c.Timing.FPS))
	}
	if c.Theme.CellWidth <= 0 {
		errs = append(errs, fmt.Errorf("theme.cell_width must be positive, got %d", c.Theme.CellWidth))
	}
	if _, err := ParseDifficulty(string(c.Difficulty)); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Theme.resolve(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Runtime converts the configuration into the runtime settings handed to a
// game, with the difficulty preset applied.
func (c ChaseConfig) Runtime(screenW, screenH int) (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	preset, _ := ParseDifficulty(string(c.Difficulty))
	timing := ApplyPreset(c.Timing, preset)
	theme, _ := c.Theme.resolve()

	return core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: timing.FPS,
		Timing: core.Timing{
			PlayerStep:  timing.PlayerStep(),
			PursuerStep: timing.PursuerStep(),
		},
		Theme: theme,
	}, nil
}

// resolve parses color names and glyphs into a core.Theme.
func (t ThemeConfig) resolve() (core.Theme, error) {
	theme := core.Theme{CellWidth: t.CellWidth}
	var errs []error

	colors := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"wall", t.Colors.Wall, &theme.Wall},
		{"collectible", t.Colors.Collectible, &theme.Collectible},
		{"player", t.Colors.Player, &theme.Player},
		{"pursuer", t.Colors.Pursuer, &theme.Pursuer},
		{"text", t.Colors.Text, &theme.Text},
	}
	for _, c := range colors {
		col, err := core.ParseColor(c.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("theme.colors.%s: %w", c.key, err))
		}
		*c.dst = col
	}

	glyphs := []struct {
		key   string
		glyph string
		dst   *rune
	}{
		{"wall", t.Glyphs.Wall, &theme.WallGlyph},
		{"collectible", t.Glyphs.Collectible, &theme.CollectibleGlyph},
		{"player", t.Glyphs.Player, &theme.PlayerGlyph},
		{"pursuer", t.Glyphs.Pursuer, &theme.PursuerGlyph},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.glyph) != 1 {
			errs = append(errs, fmt.Errorf("theme.glyphs.%s must be a single character, got %q", g.key, g.glyph))
			continue
		}
		*g.dst, _ = utf8.DecodeRuneInString(g.glyph)
	}

	return theme, errors.Join(errs...)
}
