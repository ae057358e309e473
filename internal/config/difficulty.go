package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset.
// The empty string means "no preset" and is not an error.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched. Starting lives never change.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Session.DamageGraceTicks = cfg.Session.DamageGraceTicks * 3 / 2
		cfg.Session.PowerupTicks = cfg.Session.PowerupTicks * 3 / 2
		cfg.Enemy.Speed *= 0.75
	case DifficultyHard:
		cfg.Session.DamageGraceTicks /= 2
		cfg.Session.PowerupTicks = cfg.Session.PowerupTicks * 2 / 3
		cfg.Enemy.Speed *= 1.5
	}
}
