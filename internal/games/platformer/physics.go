package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// updatePlayer runs the player's part of a frame: input, integration,
// collision passes, invincibility countdown, bounds and camera.
func (w *World) updatePlayer(in core.InputFrame) {
	p := &w.Player
	phys := w.cfg.Physics

	speed := phys.MoveSpeed
	if in.Has(core.ActionRun) {
		speed = phys.RunSpeed
	}

	switch {
	case in.Has(core.ActionLeft):
		p.VX = -speed
		p.Facing = FacingLeft
	case in.Has(core.ActionRight):
		p.VX = speed
		p.Facing = FacingRight
	default:
		p.VX *= phys.Friction
	}

	if in.Has(core.ActionJump) && p.OnGround {
		p.VY = phys.JumpImpulse
		p.OnGround = false
		w.spawnParticles(p.X+p.W/2, p.Bottom(), jumpSparkColor, w.cfg.Particles.JumpCount)
		w.emit(core.EventJump)
	}

	p.X += p.VX
	p.Y += p.VY
	p.VY += phys.Gravity

	p.OnGround = false
	resolvePlayerPlatforms(p, w.Platforms)
	w.resolvePlayerEnemies()
	w.resolvePlayerCollectibles()

	tickInvincibility(p)

	if p.X < 0 {
		p.X = 0
	}
	if p.Y > w.cfg.Camera.ViewportHeight {
		w.LoseLife()
	}

	w.updateCamera()
}

// tickInvincibility counts the window down and clears the flag when it runs out.
func tickInvincibility(p *Player) {
	if !p.Invincible {
		return
	}
	p.InvincibleTime--
	if p.InvincibleTime <= 0 {
		p.InvincibleTime = 0
		p.Invincible = false
	}
}

// updateCamera eases the camera toward centering the player.
func (w *World) updateCamera() {
	cam := w.cfg.Camera
	target := w.Player.X - cam.ViewportWidth/2
	w.Camera.X += (target - w.Camera.X) * cam.Smoothing
	w.Camera.X = core.ClampF(w.Camera.X, 0, cam.WorldWidth-cam.ViewportWidth)
}

// update moves a living enemy. Enemies only turn around at the world
// edges; they walk straight off platform ends.
func (e *Enemy) update(platforms []Platform, gravity, worldWidth float64) {
	if !e.Alive {
		return
	}

	e.X += e.VX
	e.Y += e.VY
	e.VY += gravity

	landEnemy(e, platforms)

	if e.VX > 0 && e.X > worldWidth {
		e.VX = -e.VX
	}
	if e.VX < 0 && e.X < 0 {
		e.VX = -e.VX
	}
}

// update advances the bob animation of an uncollected item.
func (c *Collectible) update(bobSpeed float64) {
	if c.Collected {
		return
	}
	c.Bob += bobSpeed
}
