package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybrick/internal/platform/tui"
	"github.com/vovakirdan/skybrick/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start Skybrick in interactive menu mode.

Use arrow keys or j/k to pick a mode, left/right to change the difficulty,
Enter to fly. After a run, B returns to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select mode
  Tab             - Scoreboard
  Q               - Quit

Examples:
  skybrick menu
  skybrick menu --fps 30
  skybrick menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	cfg := runtimeConfig()
	preset := a.preset

	for {
		menuResult, err := tui.RunMenu(a.store, cfg, preset)
		if err != nil {
			return err
		}

		// Keep size changes and the chosen difficulty for the next pass
		cfg = menuResult.Config
		if menuResult.Difficulty != "" {
			preset = menuResult.Difficulty
		}

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(a.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.GameID == "" {
			return nil
		}

		game, err := registry.Create(menuResult.GameID, a.env(preset))
		if err != nil {
			a.logger.Error("could not create game", "mode", menuResult.GameID, "err", err)
			continue
		}

		// Fresh pipes for every run unless a seed was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		a.logger.Info("starting run", "mode", menuResult.GameID, "difficulty", preset)
		back, err := tui.Run(game, tui.Options{
			Store:     a.store,
			Config:    cfg,
			Logger:    a.logger,
			AllowBack: true,
		})
		if err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
		if !back {
			return nil
		}
	}
}
