package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/games/chase/mazes"
)

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(level)
	return logger, nil
}

// openLogFile opens the log file for local play. The terminal belongs to the
// game while it runs, so local logs never go to stderr.
func openLogFile() (*os.File, error) {
	path := flagLogFile
	if path == "" {
		dir := config.HomeDir()
		if dir == "" {
			return nil, fmt.Errorf("cannot determine home directory for the log file")
		}
		path = filepath.Join(dir, "chase.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads the configuration and applies the --difficulty override.
func loadConfig(logger *log.Logger) (config.ChaseConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		cfg.Difficulty = preset
	}
	logger.Info("config loaded", "source", source, "difficulty", cfg.Difficulty)
	return cfg, nil
}

// registerUserMazes registers the mazes found in --mazes or the configured
// maze directory. Broken files are logged and skipped.
func registerUserMazes(cfg config.ChaseConfig, logger *log.Logger) error {
	dir := flagMazesDir
	if dir == "" {
		dir = cfg.Mazes.Dir
	}
	if dir == "" {
		return nil
	}

	loader := mazes.NewLoader(dir)
	ms, err := loader.LoadAll()
	if err != nil {
		return err
	}
	for _, problem := range loader.Problems {
		logger.Warn("maze skipped", "error", problem)
	}

	errs := chase.RegisterMazes(ms)
	for _, err := range errs {
		logger.Warn("maze not registered", "error", err)
	}
	logger.Info("user mazes loaded", "dir", dir, "count", len(ms)-len(errs))
	return nil
}

// prepare runs the shared startup for the game commands and returns the
// runtime settings for a screen of the given size.
func prepare(logger *log.Logger, screenW, screenH int) (core.RuntimeConfig, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	if err := registerUserMazes(cfg, logger); err != nil {
		return core.RuntimeConfig{}, err
	}
	return cfg.Runtime(screenW, screenH)
}
