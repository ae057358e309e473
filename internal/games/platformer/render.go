package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	GroundChar  = '█'
	BrickChar   = '▒'
	PlayerChar  = '█'
	FlickerChar = '░'
	EyeChar     = '•'
	GoombaChar  = '▆'
	ShellChar   = '▓'
	CoinChar    = '●'
	PowerupChar = '★'
	CloudChar   = '░'
	HeartChar   = '♥'
	SparkBright = '*'
	SparkMedium = '+'
	SparkFaint  = '.'
)

// Layout
const (
	hudRows      = 1
	minScreenW   = 40
	minScreenH   = 12
	cloudCount   = 5
	cloudSpacing = 250.0
)

// viewport maps world units to screen cells below the HUD.
type viewport struct {
	sx, sy     float64 // world units per cell
	camX, camY float64
	field      core.Rect // playfield in cells
}

func newViewport(dst *core.Screen, cam config.CameraConfig, camX, camY float64) viewport {
	field := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	return viewport{
		sx:    cam.ViewportWidth / float64(field.W),
		sy:    cam.ViewportHeight / float64(field.H),
		camX:  camX,
		camY:  camY,
		field: field,
	}
}

// rect returns the cells covered by a box given in screen-space world units.
// Every visible box covers at least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x / v.sx))
	y0 := int(math.Floor(y / v.sy))
	x1 := int(math.Ceil((x + w) / v.sx))
	y1 := int(math.Ceil((y + h) / v.sy))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	return core.NewRect(x0, y0+v.field.Y, x1-x0, y1-y0)
}

// worldRect maps a world box through the camera.
func (v viewport) worldRect(b core.Box) core.Rect {
	return v.rect(b.X-v.camX, b.Y-v.camY, b.W, b.H)
}

// fill draws r clipped to the playfield.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	f := v.field
	if !r.Intersects(f) {
		return
	}
	x0 := core.Clamp(r.X, f.X, f.Right())
	y0 := core.Clamp(r.Y, f.Y, f.Bottom())
	x1 := core.Clamp(r.Right(), f.X, f.Right())
	y1 := core.Clamp(r.Bottom(), f.Y, f.Bottom())
	dst.DrawRect(core.NewRect(x0, y0, x1-x0, y1-y0), glyph, c)
}

// set draws one cell if it lies in the playfield.
func (v viewport) set(dst *core.Screen, x, y int, glyph rune, c core.Color) {
	if x < v.field.X || x >= v.field.Right() || y < v.field.Y || y >= v.field.Bottom() {
		return
	}
	dst.SetColor(x, y, glyph, c)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.world.Snapshot()
	cam := g.world.cfg.Camera
	vp := newViewport(dst, cam, snap.CameraX, snap.CameraY)

	renderClouds(dst, vp, cam, snap.CameraX)
	renderPlatforms(dst, vp, snap.Platforms)
	renderCollectibles(dst, vp, snap.Collectibles)
	renderEnemies(dst, vp, snap.Enemies)
	renderParticles(dst, vp, snap.Particles)
	renderPlayer(dst, vp, snap.Player)
	renderHUD(dst, snap)
	renderOverlay(dst, snap)
}

// renderClouds draws the parallax background. Clouds drift at half the
// camera speed and wrap around a band slightly wider than the screen.
func renderClouds(dst *core.Screen, vp viewport, cam config.CameraConfig, camX float64) {
	for i := range cloudCount {
		fi := float64(i)
		x := math.Mod(fi*cloudSpacing+100-camX*0.5, cam.ViewportWidth+100)
		y := 50 + fi*20
		vp.fill(dst, vp.rect(x-20, y-15, 90, 25), CloudChar, core.ColorWhite)
	}
}

func renderPlatforms(dst *core.Screen, vp viewport, platforms []PlatformView) {
	for _, p := range platforms {
		glyph := GroundChar
		if p.Kind == PlatformBrick {
			glyph = BrickChar
		}
		vp.fill(dst, vp.worldRect(p.Box), glyph, p.Color)
	}
}

func renderCollectibles(dst *core.Screen, vp viewport, items []CollectibleView) {
	for _, c := range items {
		b := c.Box
		b.Y += c.BobOffset

		var glyph rune
		switch c.Kind {
		case CollectibleCoin:
			glyph = CoinChar
		case CollectiblePowerup:
			glyph = PowerupChar
		}
		vp.fill(dst, vp.worldRect(b), glyph, c.Color)
	}
}

func renderEnemies(dst *core.Screen, vp viewport, enemies []EnemyView) {
	for _, e := range enemies {
		var glyph rune
		switch e.Kind {
		case EnemyGoomba:
			glyph = GoombaChar
		case EnemyShell:
			glyph = ShellChar
		}
		vp.fill(dst, vp.worldRect(e.Box), glyph, e.Color)
	}
}

// renderParticles picks a glyph by remaining alpha so sparks fade out.
func renderParticles(dst *core.Screen, vp viewport, particles []ParticleView) {
	for _, p := range particles {
		glyph := SparkFaint
		switch {
		case p.Alpha > 2.0/3:
			glyph = SparkBright
		case p.Alpha > 1.0/3:
			glyph = SparkMedium
		}
		r := vp.rect(p.X-vp.camX, p.Y-vp.camY, 4, 4)
		vp.set(dst, r.X, r.Y, glyph, p.Color)
	}
}

func renderPlayer(dst *core.Screen, vp viewport, p PlayerView) {
	glyph := PlayerChar
	if p.Flicker {
		glyph = FlickerChar
	}
	r := vp.worldRect(p.Box)
	vp.fill(dst, r, glyph, core.ColorRed)

	eyeX := r.Right() - 1
	if p.Facing == FacingLeft {
		eyeX = r.X
	}
	if r.W > 1 {
		vp.set(dst, eyeX, r.Y, EyeChar, core.ColorBrightWhite)
	}
}

// renderHUD draws score, lives, coins and the powerup timer on row 0.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightWhite)

	lives := fmt.Sprintf("Lives: %s", strings.Repeat(string(HeartChar), snap.Lives))
	dst.DrawTextColor((dst.Width()-len([]rune(lives)))/2, 0, lives, core.ColorRed)

	coins := fmt.Sprintf("Coins: %d", snap.Coins)
	if snap.Player.Invincible {
		coins = fmt.Sprintf("%c %ds  %s", PowerupChar, (snap.Player.InvincibleTime+59)/60, coins)
	}
	dst.DrawTextColor(dst.Width()-len([]rune(coins))-1, 0, coins, core.ColorGold)
}

// renderOverlay draws phase messages.
func renderOverlay(dst *core.Screen, snap Snapshot) {
	switch snap.Phase {
	case PhaseIdle:
		drawCenteredBox(dst, "PLATFORMER", "Press ENTER to start")
	case PhasePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case PhaseOver:
		subtitle := fmt.Sprintf("Final Score: %d  |  ENTER or R to play again", snap.Score)
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := min(max(titleLen, subtitleLen)+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(max(boxX+(boxW-subtitleLen)/2, 0), boxY+3, subtitle)
}
