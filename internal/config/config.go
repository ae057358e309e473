// Package config provides YAML-based configuration for the platformer:
// every gameplay constant lives here rather than in the simulation code.
package config

// PlatformerConfig contains all configuration for the platformer game.
type PlatformerConfig struct {
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Particles   ParticleConfig    `yaml:"particles"`
	Camera      CameraConfig      `yaml:"camera"`
	Session     SessionConfig     `yaml:"session"`
	Input       InputConfig       `yaml:"input"`
}

// PhysicsConfig defines per-frame integration constants (world units/frame).
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	Friction    float64 `yaml:"friction"`     // vx multiplier when no direction is held
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = upward
	MoveSpeed   float64 `yaml:"move_speed"`
	RunSpeed    float64 `yaml:"run_speed"`
	StompBounce float64 `yaml:"stomp_bounce"` // fraction of jump impulse after a stomp
}

// PlayerConfig defines the player body and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// EnemyConfig defines enemy bodies and patrol motion.
type EnemyConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // horizontal speed magnitude
	GravityScale float64 `yaml:"gravity_scale"` // fraction of player gravity
}

// CollectibleConfig defines coin/powerup bodies and their bob animation.
type CollectibleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BobSpeed     float64 `yaml:"bob_speed"`     // phase advance per frame
	BobAmplitude float64 `yaml:"bob_amplitude"` // render offset in world units
}

// ParticleConfig defines cosmetic burst particles.
type ParticleConfig struct {
	Life         int     `yaml:"life"` // frames
	Gravity      float64 `yaml:"gravity"`
	SpreadX      float64 `yaml:"spread_x"` // vx in [-spread_x/2, spread_x/2]
	MinRise      float64 `yaml:"min_rise"` // vy in [-max_rise, -min_rise]
	MaxRise      float64 `yaml:"max_rise"`
	JumpCount    int     `yaml:"jump_count"`
	StompCount   int     `yaml:"stomp_count"`
	CoinCount    int     `yaml:"coin_count"`
	PowerupCount int     `yaml:"powerup_count"`
}

// CameraConfig defines the viewport, world extent and follow smoothing.
type CameraConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	WorldWidth     float64 `yaml:"world_width"`
	Smoothing      float64 `yaml:"smoothing"` // lerp factor per frame
}

// SessionConfig defines lives, scoring and invincibility windows.
type SessionConfig struct {
	Lives            int `yaml:"lives"`
	StompPoints      int `yaml:"stomp_points"`
	CoinPoints       int `yaml:"coin_points"`
	PowerupPoints    int `yaml:"powerup_points"`
	PowerupTicks     int `yaml:"powerup_ticks"`      // invincibility from a powerup
	DamageGraceTicks int `yaml:"damage_grace_ticks"` // invincibility after losing a life
}

// InputConfig tunes how terminal key presses become held controls.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"` // ticks a control stays held after its last press
}
