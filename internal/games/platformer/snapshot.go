package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Snapshot is the read-only view handed to presentation each frame.
// Inert entities (dead enemies, collected items) are left out.
type Snapshot struct {
	Tick  uint64
	Epoch uint64
	Phase Phase
	Score int
	Lives int
	Coins int

	CameraX, CameraY float64

	Player       PlayerView
	Platforms    []PlatformView
	Enemies      []EnemyView
	Collectibles []CollectibleView
	Particles    []ParticleView

	RNGState uint64
}

// PlayerView is the drawable state of the player.
type PlayerView struct {
	Box            core.Box
	Facing         Facing
	Invincible     bool
	InvincibleTime int
	Flicker        bool
}

// PlatformView is a drawable platform.
type PlatformView struct {
	Box   core.Box
	Kind  PlatformKind
	Color core.Color
}

// EnemyView is a drawable living enemy.
type EnemyView struct {
	Box   core.Box
	Kind  EnemyKind
	Color core.Color
}

// CollectibleView is a drawable uncollected item. BobOffset is already
// scaled to world units.
type CollectibleView struct {
	Box       core.Box
	Kind      CollectibleKind
	Color     core.Color
	BobOffset float64
}

// ParticleView is a drawable particle with its fade level.
type ParticleView struct {
	X, Y  float64
	Color core.Color
	Alpha float64
}

// Snapshot returns the current presentation state.
func (w *World) Snapshot() Snapshot {
	p := &w.Player
	snap := Snapshot{
		Tick:    w.tick,
		Epoch:   w.Session.Epoch(),
		Phase:   w.Session.Phase,
		Score:   w.Session.Score,
		Lives:   w.Session.Lives,
		Coins:   w.Session.Coins,
		CameraX: w.Camera.X,
		CameraY: w.Camera.Y,
		Player: PlayerView{
			Box:            p.Box,
			Facing:         p.Facing,
			Invincible:     p.Invincible,
			InvincibleTime: p.InvincibleTime,
			Flicker:        p.Flicker(),
		},
		Platforms: make([]PlatformView, 0, len(w.Platforms)),
		RNGState:  w.rng.state,
	}

	for _, pl := range w.Platforms {
		snap.Platforms = append(snap.Platforms, PlatformView{Box: pl.Box, Kind: pl.Kind, Color: pl.Kind.Color()})
	}
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		snap.Enemies = append(snap.Enemies, EnemyView{Box: e.Box, Kind: e.Kind, Color: e.Kind.Color()})
	}
	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Collected {
			continue
		}
		snap.Collectibles = append(snap.Collectibles, CollectibleView{
			Box:       c.Box,
			Kind:      c.Kind,
			Color:     c.Kind.Color(),
			BobOffset: c.BobOffset(w.cfg.Collectible.BobAmplitude),
		})
	}
	for i := range w.Particles {
		pt := &w.Particles[i]
		snap.Particles = append(snap.Particles, ParticleView{X: pt.X, Y: pt.Y, Color: pt.Color, Alpha: pt.Alpha()})
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Coins) //#nosec G115 -- hash computation
	h = hashFloats(h, snap.CameraX, snap.CameraY)

	pb := snap.Player.Box
	h = hashFloats(h, pb.X, pb.Y)
	h = h*31 + uint64(snap.Player.InvincibleTime) //#nosec G115 -- hash computation

	for _, e := range snap.Enemies {
		h = hashFloats(h, e.Box.X, e.Box.Y)
	}
	for _, c := range snap.Collectibles {
		h = hashFloats(h, c.Box.X, c.Box.Y, c.BobOffset)
	}
	for _, p := range snap.Particles {
		h = hashFloats(h, p.X, p.Y, p.Alpha)
	}

	h = h*31 + snap.RNGState
	return h
}

func hashFloats(h uint64, vals ...float64) uint64 {
	for _, v := range vals {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
