package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
// It mirrors defaults/platformer.yaml and is the fallback when the
// embedded YAML cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PhysicsConfig{
			Gravity:     0.5,
			Friction:    0.8,
			JumpImpulse: -12,
			MoveSpeed:   5,
			RunSpeed:    8,
			StompBounce: 0.7,
		},
		Player: PlayerConfig{
			Width:  32,
			Height: 32,
			SpawnX: 100,
			SpawnY: 200,
		},
		Enemy: EnemyConfig{
			Width:        24,
			Height:       24,
			Speed:        1,
			GravityScale: 0.5,
		},
		Collectible: CollectibleConfig{
			Width:        16,
			Height:       16,
			BobSpeed:     0.1,
			BobAmplitude: 3,
		},
		Particles: ParticleConfig{
			Life:         30,
			Gravity:      0.1,
			SpreadX:      6,
			MinRise:      2,
			MaxRise:      5,
			JumpCount:    5,
			StompCount:   8,
			CoinCount:    6,
			PowerupCount: 10,
		},
		Camera: CameraConfig{
			ViewportWidth:  800,
			ViewportHeight: 400,
			WorldWidth:     1200,
			Smoothing:      0.1,
		},
		Session: SessionConfig{
			Lives:            3,
			StompPoints:      100,
			CoinPoints:       50,
			PowerupPoints:    200,
			PowerupTicks:     300, // 5 seconds at 60fps
			DamageGraceTicks: 120, // 2 seconds
		},
		Input: InputConfig{
			HoldTicks: 12,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
