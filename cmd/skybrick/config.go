package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/games/flappy"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the game configuration after loading --config (or the user and
project config files) and applying --difficulty and --mode. The output is a
valid config file and can be edited and passed back with --config.

Examples:
  skybrick config > my-flappy.yaml
  skybrick config --difficulty hard --mode chase`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadGameConfig()
	if err != nil {
		return err
	}
	gameID, err := modeID(flagMode)
	if err != nil {
		return err
	}
	if gameID == flappy.ChaseID {
		config.EnableChase(&cfg)
	}

	data, err := config.MarshalFlappy(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
