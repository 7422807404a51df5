package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/skybrick/internal/audio"
	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/core"
	"github.com/vovakirdan/skybrick/internal/games/flappy"
	"github.com/vovakirdan/skybrick/internal/registry"
	"github.com/vovakirdan/skybrick/internal/storage"
)

// newLogger builds the process logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "skybrick",
		Level:           level,
	}), nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// openLogFile opens the --log-file for appending. The terminal UI owns
// stdout and stderr, so interactive commands log there instead.
func openLogFile() (io.WriteCloser, error) {
	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// modeID maps --mode or a positional argument to a registered game ID.
func modeID(mode string) (string, error) {
	switch strings.ToLower(mode) {
	case "", "classic", flappy.ClassicID:
		return flappy.ClassicID, nil
	case "chase", flappy.ChaseID:
		return flappy.ChaseID, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 'skybrick list' to see available modes)", mode)
}

// difficulty parses --difficulty, rejecting unknown presets.
func difficulty() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	preset := config.ParseDifficultyPreset(flagDifficulty)
	if preset == "" {
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal or hard)", flagDifficulty)
	}
	return preset, nil
}

// loadGameConfig loads the YAML config and applies --difficulty.
func loadGameConfig() (config.FlappyConfig, config.DifficultyPreset, error) {
	preset, err := difficulty()
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	config.ApplyFlappyPreset(&cfg, preset)
	return cfg, preset, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}

// app bundles what the interactive commands share.
type app struct {
	logger  *log.Logger
	logFile io.Closer
	cfg     config.FlappyConfig
	preset  config.DifficultyPreset
	store   *storage.Store
	player  *audio.Player
}

// newApp loads configuration and opens the collaborators.
// A missing database or audio device degrades instead of failing.
func newApp() (*app, error) {
	a := &app{}

	logFile, err := openLogFile()
	if err != nil {
		return nil, err
	}
	a.logFile = logFile
	if a.logger, err = newLogger(logFile); err != nil {
		a.close()
		return nil, err
	}

	if a.cfg, a.preset, err = loadGameConfig(); err != nil {
		a.close()
		return nil, err
	}

	a.store, err = storage.Open(flagDBPath)
	if err != nil {
		a.logger.Warn("could not open scores database, running without scores", "err", err)
		a.store = nil
	}

	a.player = audio.NewPlayer(audio.Options{Muted: flagMute}, a.logger)
	return a, nil
}

// env returns the registry environment for creating a mode.
func (a *app) env(preset config.DifficultyPreset) registry.Env {
	cfg := a.cfg
	if preset != a.preset {
		// Reload so a menu choice replaces, rather than stacks on, the flag preset.
		if base, err := config.LoadFlappy(flagConfig); err == nil {
			cfg = base
			config.ApplyFlappyPreset(&cfg, preset)
		}
	}
	return registry.Env{
		Config: cfg,
		Audio:  a.player,
		Store:  a.store,
		Logger: a.logger,
	}
}

func (a *app) close() {
	if a.player != nil {
		a.player.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
