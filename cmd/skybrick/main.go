// skybrick is a side-scrolling flyer for the terminal.
//
// Usage:
//
//	skybrick play [mode]      - Fly a run (classic or chase)
//	skybrick menu             - Pick a mode and difficulty interactively
//	skybrick scores [mode]    - Show the leaderboard
//	skybrick simulate         - Run the autopilot headless and report the outcome
//	skybrick serve            - Host the game over SSH
//	skybrick config           - Print the effective configuration as YAML
//	skybrick list             - List the available modes
//
// Global flags:
//
//	--fps <rate>           - Frame rate (default: 60)
//	--seed <value>         - RNG seed for reproducible pipe layouts
//	--db <path>            - Scores database (default: ~/.skybrick/scores.db)
//	--config <path>        - Custom game config YAML
//	--difficulty <preset>  - easy, normal or hard
//	--mode <mode>          - classic or chase
//	--mute                 - Disable sound effects
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Log file for the interactive commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/skybrick/internal/games/flappy"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skybrick",
	Short: "Skybrick - fly a brick through the pipes in your terminal",
	Long: `Skybrick is a side-scrolling reflex game for the terminal.
Flap through the gaps between pipes; touching a pipe or the ground ends the run.
In chase mode a pursuer follows the bird and ends the run if it catches up.

Available commands:
  play      - Fly a run directly
  menu      - Pick a mode and difficulty
  scores    - View the leaderboard
  simulate  - Run the autopilot headless
  serve     - Host the game over SSH
  config    - Print the effective configuration
  list      - Show all modes

Examples:
  skybrick play
  skybrick play chase --difficulty hard
  skybrick menu --mute
  skybrick simulate --seed 42 --frames 7200
  skybrick serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.skybrick/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagMode, "mode", "classic", "Game mode: classic, chase")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.skybrick/skybrick.log", "Log file used while the terminal UI is running")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
