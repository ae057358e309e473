package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func newRunningWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(config.DefaultPlatformerConfig(), 42)
	if !w.Start() {
		t.Fatal("Start() on a new world should succeed")
	}
	return w
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestBuildLevel(t *testing.T) {
	platforms, enemies, collectibles := buildLevel(config.DefaultPlatformerConfig())

	if len(platforms) != 7 {
		t.Errorf("platforms = %d, expected 7", len(platforms))
	}
	if platforms[0].Kind != PlatformGround || platforms[0].Box != core.NewBox(0, 350, 800, 50) {
		t.Errorf("first platform = %+v, expected ground (0,350,800,50)", platforms[0])
	}
	if len(enemies) != 5 {
		t.Errorf("enemies = %d, expected 5", len(enemies))
	}
	for i, e := range enemies {
		if !e.Alive || e.VX != -1 || e.W != 24 || e.H != 24 {
			t.Errorf("enemy %d = %+v, expected alive 24x24 walking left", i, e)
		}
	}
	if len(collectibles) != 7 {
		t.Errorf("collectibles = %d, expected 7", len(collectibles))
	}
	if collectibles[6].Kind != CollectiblePowerup {
		t.Errorf("last collectible = %v, expected powerup", collectibles[6].Kind)
	}
}

func TestLandingOnGround(t *testing.T) {
	p := spawnPlayer(config.DefaultPlatformerConfig().Player)
	p.Y = 340
	p.VY = 5
	ground := []Platform{{Box: core.NewBox(0, 350, 800, 50), Kind: PlatformGround}}

	resolvePlayerPlatforms(&p, ground)

	if p.Y != 318 {
		t.Errorf("Y = %v, expected 318", p.Y)
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0", p.VY)
	}
	if !p.OnGround {
		t.Error("OnGround should be true after landing")
	}
	if p.Overlaps(ground[0].Box) {
		t.Error("player should not overlap the ground after landing")
	}
}

func TestPlatformCorrections(t *testing.T) {
	tests := []struct {
		name         string
		player       Player
		platform     core.Box
		wantX, wantY float64
		wantVX       float64
		wantVY       float64
	}{
		{
			name:     "ceiling",
			player:   Player{Box: core.NewBox(10, 295, 32, 32), VY: -5},
			platform: core.NewBox(0, 280, 100, 20),
			wantX:    10, wantY: 300, wantVX: 0, wantVY: 0,
		},
		{
			name:     "wall on the right",
			player:   Player{Box: core.NewBox(90, 300, 32, 32), VX: 5},
			platform: core.NewBox(100, 290, 50, 50),
			wantX:    68, wantY: 300, wantVX: 0, wantVY: 0,
		},
		{
			name:     "wall on the left",
			player:   Player{Box: core.NewBox(140, 300, 32, 32), VX: -5},
			platform: core.NewBox(100, 290, 50, 50),
			wantX:    150, wantY: 300, wantVX: 0, wantVY: 0,
		},
		{
			name:     "no overlap",
			player:   Player{Box: core.NewBox(0, 0, 32, 32), VX: 3, VY: 3},
			platform: core.NewBox(100, 290, 50, 50),
			wantX:    0, wantY: 0, wantVX: 3, wantVY: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.player
			resolvePlayerPlatforms(&p, []Platform{{Box: tc.platform, Kind: PlatformBrick}})

			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", p.X, p.Y, tc.wantX, tc.wantY)
			}
			if p.VX != tc.wantVX || p.VY != tc.wantVY {
				t.Errorf("velocity = (%v, %v), expected (%v, %v)", p.VX, p.VY, tc.wantVX, tc.wantVY)
			}
			if p.OnGround {
				t.Error("only a landing should set OnGround")
			}
		})
	}
}

func TestPlatformOrderMatters(t *testing.T) {
	a := Platform{Box: core.NewBox(0, 300, 100, 20), Kind: PlatformBrick}
	b := Platform{Box: core.NewBox(0, 290, 100, 20), Kind: PlatformBrick}

	tests := []struct {
		name      string
		platforms []Platform
		wantY     float64
	}{
		{"a then b", []Platform{a, b}, 268},
		{"b then a", []Platform{b, a}, 258},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{Box: core.NewBox(10, 280, 32, 32), VY: 5}
			resolvePlayerPlatforms(&p, tc.platforms)
			if p.Y != tc.wantY {
				t.Errorf("Y = %v, expected %v", p.Y, tc.wantY)
			}
		})
	}
}

func TestFallingSettlesOnGround(t *testing.T) {
	w := newRunningWorld(t)

	landed := false
	for range 60 {
		w.Advance(core.NewInputFrame())
		if w.Player.OnGround {
			landed = true
		}
	}

	if !landed {
		t.Fatal("player should land within 60 frames")
	}
	if w.Player.Y != 318 {
		t.Errorf("Y = %v, expected 318", w.Player.Y)
	}
}

func TestJump(t *testing.T) {
	w := newRunningWorld(t)
	for i := 0; !w.Player.OnGround; i++ {
		if i > 120 {
			t.Fatal("player never landed")
		}
		w.Advance(core.NewInputFrame())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	events := w.Advance(in)

	if w.Player.Y != 306 {
		t.Errorf("Y after jump = %v, expected 306", w.Player.Y)
	}
	if w.Player.VY != -11.5 {
		t.Errorf("VY after jump = %v, expected -11.5", w.Player.VY)
	}
	if w.Player.OnGround {
		t.Error("OnGround should be false after a jump")
	}
	if len(w.Particles) != 5 {
		t.Errorf("particles = %d, expected 5", len(w.Particles))
	}
	if !hasEvent(events, core.EventJump) {
		t.Error("jump should emit EventJump")
	}

	// Holding jump in the air does nothing
	vy := w.Player.VY
	w.Advance(in)
	if w.Player.VY != vy+0.5 {
		t.Errorf("VY = %v, expected %v (gravity only)", w.Player.VY, vy+0.5)
	}
}

func TestHorizontalMovement(t *testing.T) {
	tests := []struct {
		name       string
		actions    []core.Action
		startVX    float64
		wantVX     float64
		wantFacing Facing
	}{
		{"walk right", []core.Action{core.ActionRight}, 0, 5, FacingRight},
		{"walk left", []core.Action{core.ActionLeft}, 0, -5, FacingLeft},
		{"run right", []core.Action{core.ActionRight, core.ActionRun}, 0, 8, FacingRight},
		{"left wins over right", []core.Action{core.ActionLeft, core.ActionRight}, 0, -5, FacingLeft},
		{"friction", nil, 5, 4, FacingRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newRunningWorld(t)
			w.Enemies = nil
			w.Player.VX = tc.startVX

			in := core.NewInputFrame()
			for _, a := range tc.actions {
				in.Set(a)
			}
			w.updatePlayer(in)

			if w.Player.VX != tc.wantVX {
				t.Errorf("VX = %v, expected %v", w.Player.VX, tc.wantVX)
			}
			if w.Player.Facing != tc.wantFacing {
				t.Errorf("Facing = %v, expected %v", w.Player.Facing, tc.wantFacing)
			}
		})
	}
}

func TestFrictionNeverReachesZero(t *testing.T) {
	w := newRunningWorld(t)
	w.Enemies = nil
	w.Player.VX = 5

	for range 50 {
		w.updatePlayer(core.NewInputFrame())
	}
	if w.Player.VX <= 0 {
		t.Errorf("VX = %v, expected a small positive value", w.Player.VX)
	}
}

func TestPlayerClampedAtLeftEdge(t *testing.T) {
	w := newRunningWorld(t)
	w.Player.X = 2

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	w.Advance(in)

	if w.Player.X != 0 {
		t.Errorf("X = %v, expected 0", w.Player.X)
	}
}

func TestStompEnemy(t *testing.T) {
	w := newRunningWorld(t)
	w.Enemies = []Enemy{{Box: core.NewBox(100, 220, 24, 24), VX: -1, Alive: true}}
	w.Player.Y = 200
	w.Player.VY = 4

	w.resolvePlayerEnemies()

	if w.Enemies[0].Alive {
		t.Error("stomped enemy should be dead")
	}
	if w.Session.Score != 100 {
		t.Errorf("Score = %d, expected 100", w.Session.Score)
	}
	wantVY := w.cfg.Physics.JumpImpulse * w.cfg.Physics.StompBounce
	if w.Player.VY != wantVY {
		t.Errorf("VY = %v, expected %v", w.Player.VY, wantVY)
	}
	if len(w.Particles) != 8 {
		t.Errorf("particles = %d, expected 8", len(w.Particles))
	}
	if w.Session.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", w.Session.Lives)
	}

	// A dead enemy is inert
	w.Player.VY = 0
	w.resolvePlayerEnemies()
	if w.Session.Lives != 3 || w.Session.Score != 100 {
		t.Error("dead enemy should not collide")
	}
}

func TestTwoEnemiesSameFrame(t *testing.T) {
	tests := []struct {
		name     string
		playerVY float64
		first    core.Box
		second   core.Box
		alive    [2]bool
		score    int
		stompEvt bool
	}{
		{
			// The bounce turns VY negative, so the second overlap hurts
			name:     "stomp then damage",
			playerVY: 4,
			first:    core.NewBox(100, 220, 24, 24),
			second:   core.NewBox(104, 221, 24, 24),
			alive:    [2]bool{false, true},
			score:    100,
			stompEvt: true,
		},
		{
			// Grace from the first hit shields the second overlap
			name:     "damage then grace",
			playerVY: 0,
			first:    core.NewBox(110, 210, 24, 24),
			second:   core.NewBox(104, 212, 24, 24),
			alive:    [2]bool{true, true},
			score:    0,
			stompEvt: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newRunningWorld(t)
			w.Player.X = 100
			w.Player.Y = 200
			w.Player.VY = tc.playerVY
			w.Enemies = []Enemy{
				{Box: tc.first, VX: -1, Kind: EnemyGoomba, Alive: true},
				{Box: tc.second, VX: -1, Kind: EnemyGoomba, Alive: true},
			}

			w.resolvePlayerEnemies()

			for i, want := range tc.alive {
				if w.Enemies[i].Alive != want {
					t.Errorf("enemy %d Alive = %v, expected %v", i, w.Enemies[i].Alive, want)
				}
			}
			if w.Session.Lives != 2 {
				t.Errorf("Lives = %d, expected 2", w.Session.Lives)
			}
			if w.Session.Score != tc.score {
				t.Errorf("Score = %d, expected %d", w.Session.Score, tc.score)
			}
			if !w.Player.Invincible {
				t.Error("player should be in damage grace")
			}
			if w.Player.VY != 0 {
				t.Errorf("VY = %v, expected 0 after respawn", w.Player.VY)
			}
			if got := hasEvent(w.events, core.EventEnemyDefeated); got != tc.stompEvt {
				t.Errorf("enemy defeated event = %v, expected %v", got, tc.stompEvt)
			}
			if !hasEvent(w.events, core.EventLifeLost) {
				t.Error("expected a life lost event")
			}
		})
	}
}

func TestDamageUntilGameOver(t *testing.T) {
	w := newRunningWorld(t)
	w.Session.Score = 150
	w.Enemies = []Enemy{{Box: core.NewBox(0, 0, 24, 24), Alive: true}}

	for hit := 1; hit <= 3; hit++ {
		// Sit the enemy on the player, no downward motion
		w.Enemies[0].X = w.Player.X
		w.Enemies[0].Y = w.Player.Y
		w.Player.VY = 0

		w.resolvePlayerEnemies()

		if w.Session.Lives != 3-hit {
			t.Fatalf("after hit %d Lives = %d, expected %d", hit, w.Session.Lives, 3-hit)
		}
		w.Player.Invincible = false
		w.Player.InvincibleTime = 0
	}

	if w.Session.Phase != PhaseOver {
		t.Errorf("Phase = %v, expected over", w.Session.Phase)
	}
	if w.Session.Score != 150 {
		t.Errorf("Score = %d, expected 150", w.Session.Score)
	}
	if !hasEvent(w.events, core.EventGameOver) {
		t.Error("game over should emit EventGameOver")
	}
	for _, e := range w.events {
		if e.Kind == core.EventGameOver && e.Score != 150 {
			t.Errorf("game over event score = %d, expected 150", e.Score)
		}
	}

	// Over is terminal for Advance
	tick := w.Tick()
	w.Advance(core.NewInputFrame())
	if w.Tick() != tick {
		t.Error("Advance should do nothing after game over")
	}
}

func TestLoseLifeRespawns(t *testing.T) {
	w := newRunningWorld(t)
	w.Session.Score = 300
	w.Session.Coins = 2
	w.Player.X, w.Player.Y = 640, 100
	w.Player.VX, w.Player.VY = 5, 3
	w.Camera.X = 250
	w.Enemies[0].Alive = false

	w.LoseLife()

	if w.Session.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", w.Session.Lives)
	}
	if w.Player.X != 100 || w.Player.Y != 200 || w.Player.VX != 0 || w.Player.VY != 0 {
		t.Errorf("player = %+v, expected at rest on spawn", w.Player)
	}
	if w.Camera.X != 0 {
		t.Errorf("Camera.X = %v, expected 0", w.Camera.X)
	}
	if !w.Player.Invincible || w.Player.InvincibleTime != 120 {
		t.Errorf("invincible = %v/%d, expected true/120", w.Player.Invincible, w.Player.InvincibleTime)
	}
	if w.Session.Score != 300 || w.Session.Coins != 2 || w.Enemies[0].Alive {
		t.Error("a lost life must not reset score, coins or entities")
	}
}

func TestLoseLifeWhileInvincible(t *testing.T) {
	w := newRunningWorld(t)
	w.Player.Invincible = true
	w.Player.InvincibleTime = 42
	w.Player.X, w.Player.Y = 500, 120

	w.LoseLife()

	if w.Session.Lives != 3 {
		t.Errorf("Lives = %d, expected 3", w.Session.Lives)
	}
	if w.Player.InvincibleTime != 42 {
		t.Errorf("InvincibleTime = %d, expected 42", w.Player.InvincibleTime)
	}
	if w.Player.X != 500 || w.Player.Y != 120 {
		t.Errorf("position = (%v, %v), expected unchanged", w.Player.X, w.Player.Y)
	}
}

func TestFallOffBottom(t *testing.T) {
	w := newRunningWorld(t)
	w.Player.X = 850
	w.Player.Y = 390
	w.Player.VY = 20

	events := w.Advance(core.NewInputFrame())

	if w.Session.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", w.Session.Lives)
	}
	if !hasEvent(events, core.EventLifeLost) {
		t.Error("falling off should emit EventLifeLost")
	}
	if w.Player.X != 100 {
		t.Errorf("X = %v, expected spawn 100", w.Player.X)
	}
}

func TestCollectCoin(t *testing.T) {
	w := newRunningWorld(t)
	coin := &w.Collectibles[0]
	w.Player.X = coin.X - 8
	w.Player.Y = coin.Y - 8

	w.resolvePlayerCollectibles()

	if !coin.Collected {
		t.Error("coin should be collected")
	}
	if w.Session.Coins != 1 || w.Session.Score != 50 {
		t.Errorf("coins/score = %d/%d, expected 1/50", w.Session.Coins, w.Session.Score)
	}
	if len(w.Particles) != 6 {
		t.Errorf("particles = %d, expected 6", len(w.Particles))
	}

	// Collected items are inert
	w.resolvePlayerCollectibles()
	if w.Session.Coins != 1 || w.Session.Score != 50 {
		t.Errorf("second pass changed coins/score to %d/%d", w.Session.Coins, w.Session.Score)
	}

	bob := coin.Bob
	coin.update(0.1)
	if coin.Bob != bob {
		t.Error("collected item should not animate")
	}
}

func TestCollectPowerup(t *testing.T) {
	w := newRunningWorld(t)
	pu := &w.Collectibles[6]
	w.Player.X = pu.X
	w.Player.Y = pu.Y

	w.resolvePlayerCollectibles()

	if w.Session.Score != 200 {
		t.Errorf("Score = %d, expected 200", w.Session.Score)
	}
	if w.Session.Coins != 0 {
		t.Errorf("Coins = %d, expected 0", w.Session.Coins)
	}
	if !w.Player.Invincible || w.Player.InvincibleTime != 300 {
		t.Errorf("invincible = %v/%d, expected true/300", w.Player.Invincible, w.Player.InvincibleTime)
	}
	if len(w.Particles) != 10 {
		t.Errorf("particles = %d, expected 10", len(w.Particles))
	}
}

func TestInvincibilityExpires(t *testing.T) {
	w := newRunningWorld(t)
	w.Enemies = nil
	w.Player.Invincible = true
	w.Player.InvincibleTime = 10

	for i := range 20 {
		w.Advance(core.NewInputFrame())
		if w.Player.InvincibleTime <= 0 && w.Player.Invincible {
			t.Fatalf("frame %d: timer %d but still invincible", i, w.Player.InvincibleTime)
		}
	}
	if w.Player.Invincible {
		t.Error("invincibility should have expired")
	}
}

func TestInvinciblePlayerIgnoresEnemies(t *testing.T) {
	w := newRunningWorld(t)
	w.Player.Invincible = true
	w.Player.InvincibleTime = 100
	w.Enemies = []Enemy{{Box: core.NewBox(w.Player.X, w.Player.Y+10, 24, 24), Alive: true}}
	w.Player.VY = 3

	w.resolvePlayerEnemies()

	if !w.Enemies[0].Alive {
		t.Error("enemy should survive contact with an invincible player")
	}
	if w.Session.Lives != 3 || w.Session.Score != 0 {
		t.Error("invincible contact should change nothing")
	}
}

func TestEnemyPatrol(t *testing.T) {
	gravity := 0.25

	t.Run("turns at right world edge", func(t *testing.T) {
		e := Enemy{Box: core.NewBox(1200.5, 0, 24, 24), VX: 1, Alive: true}
		e.update(nil, gravity, 1200)
		if e.VX != -1 {
			t.Errorf("VX = %v, expected -1", e.VX)
		}
	})

	t.Run("turns at left world edge", func(t *testing.T) {
		e := Enemy{Box: core.NewBox(0.5, 0, 24, 24), VX: -1, Alive: true}
		e.update(nil, gravity, 1200)
		if e.VX != 1 {
			t.Errorf("VX = %v, expected 1", e.VX)
		}
	})

	t.Run("walks off platform ends", func(t *testing.T) {
		brick := []Platform{{Box: core.NewBox(200, 280, 100, 20), Kind: PlatformBrick}}
		e := Enemy{Box: core.NewBox(290, 256, 24, 24), VX: 1, Alive: true}
		for range 40 {
			e.update(brick, gravity, 1200)
		}
		if e.VX != 1 {
			t.Errorf("VX = %v, expected 1 (no turn at platform edge)", e.VX)
		}
		if e.Y <= 256 {
			t.Errorf("Y = %v, expected the enemy to fall past the edge", e.Y)
		}
	})

	t.Run("lands on platforms", func(t *testing.T) {
		ground := []Platform{{Box: core.NewBox(0, 350, 800, 50), Kind: PlatformGround}}
		e := Enemy{Box: core.NewBox(300, 300, 24, 24), VX: -1, Alive: true}
		for range 60 {
			e.update(ground, gravity, 1200)
		}
		if e.Y != 326 {
			t.Errorf("Y = %v, expected 326", e.Y)
		}
	})

	t.Run("dead enemies are inert", func(t *testing.T) {
		e := Enemy{Box: core.NewBox(300, 300, 24, 24), VX: -1}
		e.update(nil, gravity, 1200)
		if e.X != 300 || e.Y != 300 {
			t.Errorf("dead enemy moved to (%v, %v)", e.X, e.Y)
		}
	})
}

func TestCollectibleBob(t *testing.T) {
	w := newRunningWorld(t)
	w.Collectibles[1].Collected = true

	for range 10 {
		w.Advance(core.NewInputFrame())
	}

	if got := w.Collectibles[0].Bob; math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Bob = %v, expected 1.0 after 10 frames", got)
	}
	if got := w.Collectibles[1].Bob; got != 0 {
		t.Errorf("collected item Bob = %v, expected 0", got)
	}

	snap := w.Snapshot()
	if len(snap.Collectibles) != 6 {
		t.Fatalf("snapshot collectibles = %d, expected 6", len(snap.Collectibles))
	}
	expected := math.Sin(w.Collectibles[0].Bob) * 3
	if got := snap.Collectibles[0].BobOffset; math.Abs(got-expected) > 1e-9 {
		t.Errorf("BobOffset = %v, expected %v", got, expected)
	}
}

func TestParticleLifetime(t *testing.T) {
	w := newRunningWorld(t)
	w.Particles = []Particle{{X: 10, Y: 10, Life: 30, MaxLife: 30}}

	for i := range 29 {
		w.Particles = updateParticles(w.Particles, 0.1)
		if len(w.Particles) != 1 {
			t.Fatalf("after %d updates particles = %d, expected 1", i+1, len(w.Particles))
		}
	}

	w.Particles = updateParticles(w.Particles, 0.1)
	if len(w.Particles) != 0 {
		t.Errorf("after 30 updates particles = %d, expected 0", len(w.Particles))
	}
	if snap := w.Snapshot(); len(snap.Particles) != 0 {
		t.Errorf("snapshot particles = %d, expected 0", len(snap.Particles))
	}
}

func TestParticleBurstRanges(t *testing.T) {
	w := newRunningWorld(t)
	w.spawnParticles(50, 50, core.ColorGold, 200)

	for i, p := range w.Particles {
		if p.VX < -3 || p.VX > 3 {
			t.Errorf("particle %d VX = %v, expected in [-3, 3]", i, p.VX)
		}
		if p.VY < -5 || p.VY > -2 {
			t.Errorf("particle %d VY = %v, expected in [-5, -2]", i, p.VY)
		}
		if p.Life != 30 || p.Alpha() != 1 {
			t.Errorf("particle %d life = %d alpha = %v, expected 30 / 1", i, p.Life, p.Alpha())
		}
	}
}

func TestCameraClamp(t *testing.T) {
	xs := []float64{-5000, -1, 0, 100, 400, 600, 1199, 1200, 5000, 1e9}

	for _, x := range xs {
		for _, start := range []float64{0, 200, 400} {
			w := newRunningWorld(t)
			w.Camera.X = start
			w.Player.X = x
			for range 30 {
				w.updateCamera()
				if w.Camera.X < 0 || w.Camera.X > 400 {
					t.Fatalf("player.x=%v: camera.x = %v, expected within [0, 400]", x, w.Camera.X)
				}
			}
		}
	}
}

func TestCameraSmoothing(t *testing.T) {
	w := newRunningWorld(t)
	w.Camera.X = 0
	w.Player.X = 800

	w.updateCamera()

	// target 400, one tenth of the way
	if w.Camera.X != 40 {
		t.Errorf("Camera.X = %v, expected 40", w.Camera.X)
	}
}

func TestLifecycle(t *testing.T) {
	w := NewWorld(config.DefaultPlatformerConfig(), 7)

	if w.Session.Phase != PhaseIdle {
		t.Fatalf("new world phase = %v, expected idle", w.Session.Phase)
	}
	w.Advance(core.NewInputFrame())
	if w.Tick() != 0 {
		t.Error("idle world should not advance")
	}
	if w.TogglePause() {
		t.Error("pause should be ignored while idle")
	}

	if !w.Start() || w.Session.Epoch() != 1 {
		t.Fatalf("Start: phase %v epoch %d, expected running/1", w.Session.Phase, w.Session.Epoch())
	}
	if w.Start() {
		t.Error("Start should be ignored while running")
	}

	w.Advance(core.NewInputFrame())
	if !w.TogglePause() || w.Session.Phase != PhasePaused {
		t.Fatal("pause toggle should pause a running game")
	}
	tick := w.Tick()
	w.Advance(core.NewInputFrame())
	if w.Tick() != tick {
		t.Error("paused world should not advance")
	}
	if w.Start() {
		t.Error("Start should be ignored while paused")
	}

	w.TogglePause()
	if w.Session.Phase != PhaseRunning || w.Session.Epoch() != 2 {
		t.Errorf("resume: phase %v epoch %d, expected running/2", w.Session.Phase, w.Session.Epoch())
	}

	w.Session.Score = 999
	w.Restart()
	if w.Session.Phase != PhaseRunning || w.Session.Epoch() != 3 || w.Session.Score != 0 || w.Tick() != 0 {
		t.Errorf("restart: phase %v epoch %d score %d tick %d", w.Session.Phase, w.Session.Epoch(), w.Session.Score, w.Tick())
	}

	w.Session.Phase = PhaseOver
	if !w.Start() || w.Session.Lives != 3 || w.Session.Epoch() != 4 {
		t.Error("Start should begin a fresh game after game over")
	}
}
