package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Burst colors per trigger.
const (
	jumpSparkColor    = core.ColorBrightYellow
	stompSparkColor   = core.ColorYellow
	coinSparkColor    = core.ColorGold
	powerupSparkColor = core.ColorBrightMagenta
)

// spawnParticles appends count particles at (x, y). Horizontal speed is
// spread symmetrically around zero; vertical speed always points up.
func (w *World) spawnParticles(x, y float64, color core.Color, count int) {
	pc := w.cfg.Particles
	for range count {
		w.Particles = append(w.Particles, Particle{
			X:       x,
			Y:       y,
			VX:      w.rng.Range(-pc.SpreadX/2, pc.SpreadX/2),
			VY:      -w.rng.Range(pc.MinRise, pc.MaxRise),
			Color:   color,
			Life:    pc.Life,
			MaxLife: pc.Life,
		})
	}
}

// updateParticles integrates every particle once and returns a new slice
// holding only those still alive.
func updateParticles(particles []Particle, gravity float64) []Particle {
	alive := make([]Particle, 0, len(particles))
	for _, p := range particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += gravity
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	return alive
}
