package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Facing is the direction the player last moved in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the single controllable character.
type Player struct {
	core.Box
	VX, VY         float64
	OnGround       bool
	Facing         Facing
	Invincible     bool
	InvincibleTime int // frames left in the current invincibility window
}

// Flicker reports whether the player is drawn faded this frame.
func (p *Player) Flicker() bool {
	return p.Invincible && (p.InvincibleTime/5)%2 == 1
}

// PlatformKind distinguishes solid ground from floating bricks.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformBrick
)

// String returns a human-readable name for the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformGround:
		return "ground"
	case PlatformBrick:
		return "brick"
	}
	panic(fmt.Sprintf("platformer: unknown platform kind %d", int(k)))
}

// Color returns the display color of the platform kind.
func (k PlatformKind) Color() core.Color {
	switch k {
	case PlatformGround:
		return core.ColorBrown
	case PlatformBrick:
		return core.ColorGold
	}
	panic(fmt.Sprintf("platformer: unknown platform kind %d", int(k)))
}

// Platform is static level geometry. It never changes after the level is built.
type Platform struct {
	core.Box
	Kind PlatformKind
}

// EnemyKind selects an enemy's look. All kinds patrol the same way.
type EnemyKind int

const (
	EnemyGoomba EnemyKind = iota
	EnemyShell
)

// String returns a human-readable name for the enemy kind.
func (k EnemyKind) String() string {
	switch k {
	case EnemyGoomba:
		return "goomba"
	case EnemyShell:
		return "shell"
	}
	panic(fmt.Sprintf("platformer: unknown enemy kind %d", int(k)))
}

// Color returns the display color of the enemy kind.
func (k EnemyKind) Color() core.Color {
	switch k {
	case EnemyGoomba:
		return core.ColorBrown
	case EnemyShell:
		return core.ColorGreen
	}
	panic(fmt.Sprintf("platformer: unknown enemy kind %d", int(k)))
}

// Enemy walks back and forth across the world. A dead enemy stays in the
// slice but takes no part in physics, collision or drawing.
type Enemy struct {
	core.Box
	VX, VY float64
	Kind   EnemyKind
	Alive  bool
}

// CollectibleKind distinguishes coins from powerups.
type CollectibleKind int

const (
	CollectibleCoin CollectibleKind = iota
	CollectiblePowerup
)

// String returns a human-readable name for the collectible kind.
func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectiblePowerup:
		return "powerup"
	}
	panic(fmt.Sprintf("platformer: unknown collectible kind %d", int(k)))
}

// Color returns the display color of the collectible kind.
func (k CollectibleKind) Color() core.Color {
	switch k {
	case CollectibleCoin:
		return core.ColorGold
	case CollectiblePowerup:
		return core.ColorBrightMagenta
	}
	panic(fmt.Sprintf("platformer: unknown collectible kind %d", int(k)))
}

// Collectible is a coin or powerup. Once collected it is inert.
type Collectible struct {
	core.Box
	Kind      CollectibleKind
	Collected bool
	Bob       float64 // animation phase
}

// BobOffset returns the vertical draw offset for the bob animation.
func (c *Collectible) BobOffset(amplitude float64) float64 {
	return math.Sin(c.Bob) * amplitude
}

// Particle is a short-lived cosmetic spark.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   core.Color
	Life    int
	MaxLife int
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Camera is the world offset of the viewport's top-left corner.
type Camera struct {
	X, Y float64
}
