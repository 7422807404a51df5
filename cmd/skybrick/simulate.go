package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skybrick/internal/core"
	"github.com/vovakirdan/skybrick/internal/games/flappy"
	"github.com/vovakirdan/skybrick/internal/platform/loop"
	"github.com/vovakirdan/skybrick/internal/registry"
	"github.com/vovakirdan/skybrick/internal/storage"
)

var (
	flagFrames   int
	flagRuns     int
	flagRealtime bool
	flagSlack    float64
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot headless and report the outcome",
	Long: `Fly the autopilot without a terminal UI. With a fixed --seed the
outcome is reproducible, which makes this handy for tuning configs.

A crashed run is restarted until --runs runs have ended or --frames
frames have been simulated.

Examples:
  skybrick simulate --seed 42
  skybrick simulate --mode chase --difficulty hard --runs 5
  skybrick simulate --frames 600 --realtime --log-level debug`,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&flagFrames, "frames", 3600, "Maximum frames to simulate (0 = until --runs runs end)")
	f.IntVar(&flagRuns, "runs", 1, "Number of runs to fly")
	f.BoolVar(&flagRealtime, "realtime", false, "Pace frames at wall-clock speed")
	f.Float64Var(&flagSlack, "slack", 10, "Autopilot slack below the gap center")
	f.BoolVar(&flagSave, "save", false, "Record each run in the scores database")
}

// simResult summarizes a simulation.
type simResult struct {
	Frames  int
	Runs    int
	Scores  []int
	Best    int
	Running bool // The last run was still in the air when the frame limit hit
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if flagRuns < 1 {
		return errors.New("--runs must be at least 1")
	}
	if flagFrames == 0 && flagRealtime {
		return errors.New("--realtime needs a --frames limit")
	}

	gameID, err := modeID(flagMode)
	if err != nil {
		return err
	}
	cfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	env := registry.Env{Config: cfg, Logger: logger}
	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
		env.Store = store
	}

	game, err := flappy.New(gameID, env)
	if err != nil {
		return err
	}
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	game.Reset(rc)

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	logger.Info("simulating", "mode", gameID, "difficulty", preset, "seed", rc.Seed, "fps", flagFPS)
	res, err := simulate(ctx, game, env.Store, simOptions{
		FPS:      flagFPS,
		Frames:   flagFrames,
		Runs:     flagRuns,
		Realtime: flagRealtime,
		Pilot:    flappy.Autopilot{Slack: flagSlack},
		OnCrash: func(run, score int) {
			logger.Info("run ended", "run", run, "score", score)
		},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	logger.Info("simulation finished",
		"frames", res.Frames,
		"runs", res.Runs,
		"best", res.Best,
		"in_flight", res.Running,
	)
	fmt.Printf("mode=%s seed=%d frames=%d runs=%d best=%d scores=%v\n",
		gameID, rc.Seed, res.Frames, res.Runs, res.Best, res.Scores)
	return nil
}

type simOptions struct {
	FPS      int
	Frames   int
	Runs     int
	Realtime bool
	Pilot    flappy.Autopilot
	OnCrash  func(run, score int)
}

// simulate flies game with the autopilot until the frame or run limit.
// A non-nil store records every ended run.
func simulate(ctx context.Context, game *flappy.Game, store *storage.Store, opts simOptions) (simResult, error) {
	var res simResult
	restart := false

	l := loop.New(game, loop.Options{
		FPS:      opts.FPS,
		Realtime: opts.Realtime,
		MaxFrame: opts.Frames,
		Input: func(int) core.InputFrame {
			in := core.NewInputFrame()
			switch game.Engine().State() {
			case flappy.StateIdle:
				in.Set(core.ActionJump)
			case flappy.StateTerminal:
				if restart {
					in.Set(core.ActionRestart)
					restart = false
				}
			case flappy.StateActive:
				if opts.Pilot.ShouldJump(game.LastSnapshot()) {
					in.Set(core.ActionJump)
				}
			}
			return in
		},
		OnFrame: func(_ int, step core.StepResult) bool {
			if !step.Crashed {
				return true
			}
			score := step.State.Score
			res.Runs++
			res.Scores = append(res.Scores, score)
			res.Best = max(res.Best, score)
			if store != nil {
				if _, err := store.SaveScore(game.ID(), score); err != nil {
					return false
				}
			}
			if opts.OnCrash != nil {
				opts.OnCrash(res.Runs, score)
			}
			if res.Runs >= opts.Runs {
				return false
			}
			restart = true
			return true
		},
	})

	err := l.Run(ctx)
	res.Frames = l.Frames()
	res.Running = game.Engine().State() == flappy.StateActive
	if res.Running {
		res.Best = max(res.Best, game.Engine().Score())
	}
	return res, err
}
