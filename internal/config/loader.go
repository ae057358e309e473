package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.arcade/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that cannot be read, parsed or validated is an
// error; the implicit locations are skipped when unusable.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultPlatformerConfig(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", "platformer.yaml")); err == nil {
		return cfg, nil
	}

	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads a YAML file over the defaults and validates the result.
func loadFile(path string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Enemy.Width <= 0 || c.Enemy.Height <= 0 {
		errs = append(errs, errors.New("enemy size must be positive"))
	}
	if c.Collectible.Width <= 0 || c.Collectible.Height <= 0 {
		errs = append(errs, errors.New("collectible size must be positive"))
	}
	if c.Camera.ViewportWidth <= 0 || c.Camera.ViewportHeight <= 0 {
		errs = append(errs, errors.New("viewport size must be positive"))
	}
	if c.Camera.WorldWidth < c.Camera.ViewportWidth {
		errs = append(errs, fmt.Errorf("world_width %.0f is narrower than the viewport %.0f",
			c.Camera.WorldWidth, c.Camera.ViewportWidth))
	}
	if c.Session.Lives <= 0 {
		errs = append(errs, errors.New("lives must be positive"))
	}
	if c.Particles.Life <= 0 {
		errs = append(errs, errors.New("particle life must be positive"))
	}
	if c.Particles.MaxRise < c.Particles.MinRise {
		errs = append(errs, errors.New("particle max_rise must not be below min_rise"))
	}
	if c.Session.PowerupTicks <= 0 || c.Session.DamageGraceTicks <= 0 {
		errs = append(errs, errors.New("invincibility windows must be positive"))
	}
	if c.Input.HoldTicks <= 0 {
		errs = append(errs, errors.New("input hold_ticks must be positive"))
	}

	return errors.Join(errs...)
}
