package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skybrick/internal/core"
	"github.com/vovakirdan/skybrick/internal/registry"
	"github.com/vovakirdan/skybrick/internal/storage"
)

// Options configures a game Model.
type Options struct {
	Store     *storage.Store
	Config    core.RuntimeConfig
	Logger    *log.Logger
	Painter   *Painter
	AllowBack bool   // B returns to the menu from the title, pause or game over screen
	Embedded  bool   // Hosted by another model, which watches BackToMenu instead of a quit
	ShotDir   string // Screenshot directory; empty means ~/.skybrick/screenshots
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	painter *Painter
	keys    *KeyMapper
	opts    Options
	logger  *log.Logger

	clock      core.FrameClock
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	lastShot   string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Config.Seed == 0 {
		opts.Config.Seed = time.Now().UnixNano()
	}
	if opts.Config.TickRate <= 0 {
		opts.Config.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Painter == nil {
		opts.Painter = defaultPainter
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(opts.Config.ScreenW, opts.Config.ScreenH),
		painter:    opts.Painter,
		keys:       NewKeyMapper(),
		opts:       opts,
		logger:     opts.Logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Config)
	return tickCmd(m.opts.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The game scales its world to whatever the screen is, so no reset.
		m.opts.Config.ScreenW = msg.Width
		m.opts.Config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		idle := !m.gameState.Started
		if m.opts.AllowBack && (idle || m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			if !m.opts.Embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick advances the game by the measured frame time.
// Once the model is leaving, the tick is not re-armed.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame, m.clock.Tick(now))
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Crashed {
		m.recordRun(result.State.Score)
	}

	return m, tickCmd(m.opts.Config.TickRate)
}

// recordRun adds a finished run to the leaderboard.
func (m Model) recordRun(score int) {
	if m.opts.Store == nil || score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "score", score, "err", err)
	}
}

// ScreenshotDir returns the default screenshot directory.
func ScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".skybrick", "screenshots")
	}
	return filepath.Join(home, ".skybrick", "screenshots")
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ShotDir
	if dir == "" {
		dir = ScreenshotDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "err", err)
		return
	}
	m.lastShot = path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return m.painter.Paint(m.screen)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastScreenshot returns the path of the most recent screenshot, if any.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// Run plays game in the local terminal until the player quits or backs out.
// It reports whether the player asked to return to the menu.
func Run(game registry.Game, opts Options) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Clicks flap
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
