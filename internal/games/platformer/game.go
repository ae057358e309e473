// Package platformer implements a side-scrolling platformer: a player runs
// and jumps across static platforms, stomps patrolling enemies and picks up
// coins and powerups while the camera follows through a world wider than
// the screen.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name clears it;
// an unknown name is rejected and the current preset is kept.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// LoadConfig resolves the configuration the next Reset will use.
func LoadConfig() (config.PlatformerConfig, error) {
	cfg, err := config.LoadPlatformer(configPath)
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	return cfg, err
}

// Game adapts a World to the registry contract.
type Game struct {
	world     *World
	runtime   core.RuntimeConfig
	configErr error
}

// New creates a new platformer game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset builds a fresh idle world.
// The epoch keeps counting across resets so that no tick scheduled
// before the reset can match a later generation.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// LoadConfig already falls back to defaults on error
	cfg, err := LoadConfig()
	g.configErr = err

	var epoch core.Epoch
	if g.world != nil {
		epoch = g.world.Session.epoch
		epoch.Advance()
	}

	g.world = NewWorld(cfg, runtime.Seed)
	g.world.Session.epoch = epoch
}

// ConfigError returns the error from the last config load, if any.
func (g *Game) ConfigError() error {
	return g.configErr
}

// HoldTicks returns how long the host should keep a pressed control held.
func (g *Game) HoldTicks() int {
	return g.world.Config().Input.HoldTicks
}

// World exposes the simulation state.
func (g *Game) World() *World {
	return g.world
}

// Command applies a lifecycle trigger.
func (g *Game) Command(c core.Command) {
	switch c {
	case core.CommandStart:
		g.world.Start()
	case core.CommandPauseToggle:
		g.world.TogglePause()
	case core.CommandRestart:
		g.world.Restart()
	}
}

// Epoch returns the current scheduling generation.
func (g *Game) Epoch() uint64 {
	return g.world.Session.Epoch()
}

// Stale reports whether a tick scheduled under epoch must be dropped.
func (g *Game) Stale(epoch uint64) bool {
	return g.world.Session.Stale(epoch)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	events := g.world.Advance(in)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := &g.world.Session
	return core.GameState{
		Score:    s.Score,
		Lives:    s.Lives,
		Coins:    s.Coins,
		Running:  s.Phase == PhaseRunning,
		Paused:   s.Phase == PhasePaused,
		GameOver: s.Phase == PhaseOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
