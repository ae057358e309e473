package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Level layout. Order matters: collision passes walk each slice in
// creation order and later platforms may override earlier corrections.
var (
	levelPlatforms = []struct {
		x, y, w, h float64
		kind       PlatformKind
	}{
		{0, 350, 800, 50, PlatformGround},
		{200, 280, 100, 20, PlatformBrick},
		{350, 220, 100, 20, PlatformBrick},
		{500, 160, 100, 20, PlatformBrick},
		{700, 250, 150, 20, PlatformBrick},
		{900, 200, 100, 20, PlatformBrick},
		{1100, 300, 200, 20, PlatformBrick},
	}

	levelEnemies = []struct {
		x, y float64
		kind EnemyKind
	}{
		{300, 300, EnemyGoomba},
		{450, 180, EnemyGoomba},
		{750, 210, EnemyGoomba},
		{950, 160, EnemyGoomba},
		{1150, 260, EnemyGoomba},
	}

	levelCollectibles = []struct {
		x, y float64
		kind CollectibleKind
	}{
		{220, 250, CollectibleCoin},
		{370, 190, CollectibleCoin},
		{520, 130, CollectibleCoin},
		{720, 220, CollectibleCoin},
		{920, 170, CollectibleCoin},
		{1120, 270, CollectibleCoin},
		{400, 190, CollectiblePowerup},
	}
)

// buildLevel creates fresh platforms, enemies and collectibles.
// Every call returns the same layout.
func buildLevel(cfg config.PlatformerConfig) ([]Platform, []Enemy, []Collectible) {
	platforms := make([]Platform, 0, len(levelPlatforms))
	for _, p := range levelPlatforms {
		platforms = append(platforms, Platform{
			Box:  core.NewBox(p.x, p.y, p.w, p.h),
			Kind: p.kind,
		})
	}

	enemies := make([]Enemy, 0, len(levelEnemies))
	for _, e := range levelEnemies {
		enemies = append(enemies, Enemy{
			Box:   core.NewBox(e.x, e.y, cfg.Enemy.Width, cfg.Enemy.Height),
			VX:    -cfg.Enemy.Speed,
			Kind:  e.kind,
			Alive: true,
		})
	}

	collectibles := make([]Collectible, 0, len(levelCollectibles))
	for _, c := range levelCollectibles {
		collectibles = append(collectibles, Collectible{
			Box:  core.NewBox(c.x, c.y, cfg.Collectible.Width, cfg.Collectible.Height),
			Kind: c.kind,
		})
	}

	return platforms, enemies, collectibles
}

// spawnPlayer returns a player at rest on the spawn point.
func spawnPlayer(cfg config.PlayerConfig) Player {
	return Player{
		Box: core.NewBox(cfg.SpawnX, cfg.SpawnY, cfg.Width, cfg.Height),
	}
}
