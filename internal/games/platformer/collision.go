package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// resolvePlayerPlatforms pushes the player out of every overlapping
// platform. Exactly one correction applies per platform: landing, ceiling,
// left wall or right wall. All platforms are checked, so a later platform
// can override an earlier correction in the same frame.
func resolvePlayerPlatforms(p *Player, platforms []Platform) {
	for i := range platforms {
		pl := &platforms[i]
		if !p.Overlaps(pl.Box) {
			continue
		}

		switch {
		case p.VY > 0 && p.Y < pl.Y:
			p.Y = pl.Y - p.H
			p.VY = 0
			p.OnGround = true
		case p.VY < 0 && p.Y > pl.Y:
			p.Y = pl.Bottom()
			p.VY = 0
		case p.VX > 0 && p.X < pl.X:
			p.X = pl.X - p.W
			p.VX = 0
		case p.VX < 0 && p.X > pl.X:
			p.X = pl.Right()
			p.VX = 0
		}
	}
}

// landEnemy settles a falling enemy on top of any platform it sank into.
// Enemies have no wall or ceiling response.
func landEnemy(e *Enemy, platforms []Platform) {
	for i := range platforms {
		pl := &platforms[i]
		if e.Overlaps(pl.Box) && e.VY > 0 && e.Y < pl.Y {
			e.Y = pl.Y - e.H
			e.VY = 0
		}
	}
}

// resolvePlayerEnemies stomps enemies hit from above and damages the
// player on any other contact. Skipped entirely while invincible.
func (w *World) resolvePlayerEnemies() {
	p := &w.Player
	if p.Invincible {
		return
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive || !p.Overlaps(e.Box) {
			continue
		}

		if p.VY > 0 && p.Y < e.Y {
			e.Alive = false
			p.VY = w.cfg.Physics.JumpImpulse * w.cfg.Physics.StompBounce
			w.Session.Score += w.cfg.Session.StompPoints
			cx, cy := e.Center()
			w.spawnParticles(cx, cy, stompSparkColor, w.cfg.Particles.StompCount)
			w.emit(core.EventEnemyDefeated)
			continue
		}

		w.LoseLife()
	}
}

// resolvePlayerCollectibles picks up every uncollected item the player touches.
func (w *World) resolvePlayerCollectibles() {
	p := &w.Player
	sc := w.cfg.Session

	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Collected || !p.Overlaps(c.Box) {
			continue
		}

		c.Collected = true
		cx, cy := c.Center()

		switch c.Kind {
		case CollectibleCoin:
			w.Session.Coins++
			w.Session.Score += sc.CoinPoints
			w.spawnParticles(cx, cy, coinSparkColor, w.cfg.Particles.CoinCount)
			w.emit(core.EventCoinCollected)
		case CollectiblePowerup:
			w.Session.Score += sc.PowerupPoints
			p.Invincible = true
			p.InvincibleTime = sc.PowerupTicks
			w.spawnParticles(cx, cy, powerupSparkColor, w.cfg.Particles.PowerupCount)
			w.emit(core.EventPowerupCollected)
		}
	}
}
