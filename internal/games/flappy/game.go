// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical
// pipes, optionally pursued by a chaser.
package flappy

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybrick/internal/config"
	"github.com/vovakirdan/skybrick/internal/core"
	"github.com/vovakirdan/skybrick/internal/registry"
	"github.com/vovakirdan/skybrick/internal/storage"
)

// Registered mode IDs.
const (
	ClassicID = "flappy"
	ChaseID   = "flappy_chase"
)

var crashFaces = []string{"x_x", "@_@", "×_×", ">_<", "o_O"}

// snapshotCache is the engine's Renderer; it keeps the last frame for Render.
type snapshotCache struct {
	last Snapshot
}

func (c *snapshotCache) Render(s Snapshot) {
	c.last = s
}

// Game adapts an Engine to the registry.Game interface.
type Game struct {
	id    string
	title string
	cfg   config.FlappyConfig

	audio  AudioSink
	scores ScoreStore
	logger *log.Logger

	engine *Engine
	queue  CommandQueue
	view   snapshotCache

	runtime   core.RuntimeConfig
	rng       *rand.Rand
	crashFace string
}

// New creates a game for the given mode ID.
// Chase mode enables the chaser; classic mode always disables it.
func New(id string, env registry.Env) (*Game, error) {
	cfg := env.Config
	title := "Skybrick"
	switch id {
	case ChaseID:
		config.EnableChase(&cfg)
		title = "Skybrick: Chase"
	default:
		cfg.Chaser.Enabled = false
	}

	g := &Game{
		id:     id,
		title:  title,
		cfg:    cfg,
		scores: storage.NewHighScoreKeeper(env.Store, id, env.Logger),
		logger: env.Logger,
	}
	if g.logger == nil {
		g.logger = log.Default()
	}
	if env.Audio != nil {
		g.audio = env.Audio
	}

	if err := g.rebuild(core.DefaultConfig()); err != nil {
		return nil, err
	}
	return g, nil
}

// rebuild replaces the engine with a fresh idle one.
func (g *Game) rebuild(rc core.RuntimeConfig) error {
	engine, err := NewEngine(g.cfg, Options{
		Seed:     rc.Seed,
		Renderer: &g.view,
		Audio:    g.audio,
		Scores:   g.scores,
		Input:    &g.queue,
	})
	if err != nil {
		return err
	}

	g.engine = engine
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.crashFace = ""
	g.queue.Drain()
	g.view.last = engine.Snapshot()
	return nil
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.title
}

// Reset returns to the title screen with a new seed.
// If the engine cannot be rebuilt the current one is kept and the error logged.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if err := g.rebuild(cfg); err != nil {
		g.logger.Error("flappy: reset failed, keeping current run", "game", g.id, "err", err)
	}
}

// Step queues the frame's input as commands and advances the engine.
func (g *Game) Step(in core.InputFrame, elapsedMs float64) core.StepResult {
	state := g.engine.State()

	if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
		switch state {
		case StateIdle:
			g.queue.Push(CommandStart)
		case StateActive:
			if in.Has(core.ActionJump) {
				g.queue.Push(CommandJump)
			}
		}
	}
	if in.Has(core.ActionRestart) && state == StateTerminal {
		g.queue.Push(CommandRestart)
		g.crashFace = ""
	}
	if in.Has(core.ActionPause) {
		g.queue.Push(CommandTogglePause)
	}

	out := g.engine.Tick(elapsedMs)
	if out.Crashed {
		g.crashFace = crashFaces[g.rng.Intn(len(crashFaces))]
	}

	return core.StepResult{
		State:   g.State(),
		Scored:  out.Scored,
		Crashed: out.Crashed,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := g.engine.State()
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		Started:   state != StateIdle,
		GameOver:  state == StateTerminal,
		Paused:    state == StateSuspended,
	}
}

// Engine exposes the underlying engine to drivers such as the autopilot.
func (g *Game) Engine() *Engine {
	return g.engine
}

// LastSnapshot returns the frame most recently pushed by the engine.
func (g *Game) LastSnapshot() Snapshot {
	return g.view.last
}

func init() {
	registry.Register(ClassicID, "Skybrick", func(env registry.Env) (registry.Game, error) {
		return New(ClassicID, env)
	})
	registry.Register(ChaseID, "Skybrick: Chase", func(env registry.Env) (registry.Game, error) {
		return New(ChaseID, env)
	})
}
