package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// World owns everything the simulation mutates: entities, camera, session
// counters and the particle RNG. Nothing outside it holds game state.
type World struct {
	Player       Player
	Platforms    []Platform
	Enemies      []Enemy
	Collectibles []Collectible
	Particles    []Particle
	Camera       Camera
	Session      Session

	cfg    config.PlatformerConfig
	seed   int64
	rng    *SimpleRNG
	tick   uint64
	events []core.Event
}

// NewWorld builds an idle world. The level is already laid out so the
// title screen has something to show behind the start prompt.
func NewWorld(cfg config.PlatformerConfig, seed int64) *World {
	w := &World{cfg: cfg, seed: seed}
	w.rebuild()
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.PlatformerConfig {
	return w.cfg
}

// Tick returns the number of frames advanced since the last rebuild.
func (w *World) Tick() uint64 {
	return w.tick
}

// rebuild resets entities, camera and counters to a fresh game.
// The phase and epoch are left to the caller.
func (w *World) rebuild() {
	w.Player = spawnPlayer(w.cfg.Player)
	w.Platforms, w.Enemies, w.Collectibles = buildLevel(w.cfg)
	w.Particles = nil
	w.Camera = Camera{}
	w.Session.Score = 0
	w.Session.Lives = w.cfg.Session.Lives
	w.Session.Coins = 0
	w.rng = NewSimpleRNG(w.seed)
	w.tick = 0
	w.events = nil
}

// Advance runs one fixed-length frame and returns the events it produced.
// Nothing happens unless the session is running.
//
// Update order is fixed: player (input, integration, collisions, camera),
// then enemies, then collectibles, then particles.
func (w *World) Advance(in core.InputFrame) []core.Event {
	if w.Session.Phase != PhaseRunning {
		return nil
	}
	w.events = w.events[:0]
	w.tick++

	w.updatePlayer(in)

	enemyGravity := w.cfg.Physics.Gravity * w.cfg.Enemy.GravityScale
	for i := range w.Enemies {
		w.Enemies[i].update(w.Platforms, enemyGravity, w.cfg.Camera.WorldWidth)
	}

	for i := range w.Collectibles {
		w.Collectibles[i].update(w.cfg.Collectible.BobSpeed)
	}

	w.Particles = updateParticles(w.Particles, w.cfg.Particles.Gravity)

	if len(w.events) == 0 {
		return nil
	}
	events := make([]core.Event, len(w.events))
	copy(events, w.events)
	return events
}

// emit records an event carrying the current score.
func (w *World) emit(kind core.EventKind) {
	w.events = append(w.events, core.Event{Kind: kind, Score: w.Session.Score})
}
