package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// helpRows is the height of the key help bar under the playfield.
const helpRows = 1

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	holds      *HoldTracker
	help       help.Model
	gameState  core.GameState
	embedded   bool // hosted by a session; Back returns to its menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model for the given game and resets it to
// an idle session. A nil logger discards everything.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	if ce, ok := game.(interface{ ConfigError() error }); ok && ce.ConfigError() != nil {
		logger.Warn("using default config", "game", game.ID(), "error", ce.ConfigError())
	}

	holdTicks := DefaultHoldTicks
	if h, ok := game.(interface{ HoldTicks() int }); ok {
		holdTicks = h.HoldTicks()
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:     store,
		logger:    logger,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holds:     NewHoldTracker(holdTicks),
		help:      help.New(),
		gameState: game.State(),
	}
}

func playfieldHeight(screenH int) int {
	return max(1, screenH-helpRows)
}

// Init implements tea.Model. Nothing is scheduled until the game starts.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	for _, action := range m.keyMapper.MapKey(msg) {
		switch action {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionStart:
			return m.command(core.CommandStart)
		case core.ActionPause:
			return m.command(core.CommandPauseToggle)
		case core.ActionRestart:
			return m.command(core.CommandRestart)
		case core.ActionBack:
			if m.gameState.Running {
				return m, nil
			}
			m.backToMenu = true
			if !m.embedded {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		default:
			m.holds.Press(action)
		}
	}

	return m, nil
}

// command applies a lifecycle trigger and, if the game is now running under
// a new epoch, schedules the first tick of that epoch.
func (m Model) command(c core.Command) (tea.Model, tea.Cmd) {
	before := m.game.Epoch()
	wasOver := m.gameState.GameOver

	m.game.Command(c)
	m.gameState = m.game.State()

	if m.game.Epoch() == before {
		// Ignored command, or a pause; the pending tick dies on its own.
		if c == core.CommandPauseToggle && m.gameState.Paused {
			m.holds.Reset()
			m.logger.Info("paused", "score", m.gameState.Score)
		}
		return m, nil
	}

	m.holds.Reset()
	if wasOver || c == core.CommandRestart {
		m.scoreSaved = false
	}
	switch c {
	case core.CommandStart:
		m.logger.Info("game started", "game", m.game.ID(), "epoch", m.game.Epoch())
	case core.CommandPauseToggle:
		m.logger.Info("resumed", "epoch", m.game.Epoch())
	case core.CommandRestart:
		m.logger.Info("restarted", "epoch", m.game.Epoch())
	}

	if !m.gameState.Running {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.game.Epoch())
}

// handleResize processes window resize events. Rendering scales to the
// screen, so the session carries on untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation once. Ticks from an older epoch, or that
// arrive while the game is not running, are dropped and end the chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if m.game.Stale(msg.Epoch) {
		return m, nil
	}
	if !m.game.State().Running {
		return m, nil
	}

	result := m.game.Step(m.holds.Frame())
	m.holds.Tick()
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logEvent(ev)
	}

	if m.gameState.GameOver {
		m.saveScore()
		return m, nil
	}
	if !m.gameState.Running {
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, msg.Epoch)
}

func (m Model) logEvent(ev core.Event) {
	switch ev.Kind {
	case core.EventLifeLost:
		m.logger.Info("life lost", "lives", m.gameState.Lives, "score", ev.Score)
	case core.EventGameOver:
		m.logger.Info("game over", "score", ev.Score, "coins", m.gameState.Coins)
	default:
		m.logger.Debug(ev.Kind.String(), "score", ev.Score)
	}
}

// saveScore records the finished run once. Zero scores are not kept.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Coins); err != nil {
		m.logger.Error("score save failed", "error", err)
		return
	}
	m.logger.Info("score saved", "score", m.gameState.Score, "coins", m.gameState.Coins)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// State returns the last observed session state.
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

// Run starts a standalone Bubble Tea program for the game.
// It returns true when the player asked for the menu rather than to quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
