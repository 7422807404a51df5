package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybrick/internal/platform/tui"
	"github.com/vovakirdan/skybrick/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Fly a run",
	Long: `Start a run of the given mode (classic or chase, default from --mode).

Controls:
  Space/W/Up/Click  - Flap (or start the run)
  Enter             - Start the run
  P/Esc             - Pause
  R                 - Restart (after a crash)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - Wider gaps, slower pipes, floatier bird
  normal  - The default tuning
  hard    - Narrow gaps and fast pipes

Examples:
  skybrick play
  skybrick play chase
  skybrick play --difficulty hard --seed 7
  skybrick play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode := flagMode
	if len(args) == 1 {
		mode = args[0]
	}
	gameID, err := modeID(mode)
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	game, err := registry.Create(gameID, a.env(a.preset))
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}

	a.logger.Info("starting run", "mode", gameID, "difficulty", a.preset, "seed", flagSeed)
	if _, err := tui.Run(game, tui.Options{
		Store:  a.store,
		Config: runtimeConfig(),
		Logger: a.logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
