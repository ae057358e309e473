package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Session holds the counters shown outside the playfield and the
// scheduling epoch.
type Session struct {
	Phase Phase
	Score int
	Lives int
	Coins int

	epoch core.Epoch
}

// Epoch returns the current scheduling generation.
func (s *Session) Epoch() uint64 {
	return s.epoch.Current()
}

// Stale reports whether work scheduled under gen belongs to an older generation.
func (s *Session) Stale(gen uint64) bool {
	return s.epoch.Stale(gen)
}

// Start begins a fresh game from idle or game over.
// It is ignored while a game is running or paused.
func (w *World) Start() bool {
	switch w.Session.Phase {
	case PhaseIdle, PhaseOver:
		w.rebuild()
		w.Session.Phase = PhaseRunning
		w.Session.epoch.Advance()
		return true
	default:
		return false
	}
}

// TogglePause suspends or resumes a running game.
// Resuming opens a new epoch so a tick scheduled before the pause is dropped.
func (w *World) TogglePause() bool {
	switch w.Session.Phase {
	case PhaseRunning:
		w.Session.Phase = PhasePaused
		return true
	case PhasePaused:
		w.Session.Phase = PhaseRunning
		w.Session.epoch.Advance()
		return true
	default:
		return false
	}
}

// Restart abandons the current game and starts a fresh one from any phase.
func (w *World) Restart() {
	w.Session.epoch.Advance()
	w.rebuild()
	w.Session.Phase = PhaseRunning
}

// LoseLife takes one life unless the player is invincible.
// The player respawns while lives remain; at zero the game is over.
// Score, coins and the level are kept across a lost life.
func (w *World) LoseLife() {
	p := &w.Player
	if p.Invincible || w.Session.Phase == PhaseOver {
		return
	}

	w.Session.Lives--
	p.Invincible = true
	p.InvincibleTime = w.cfg.Session.DamageGraceTicks

	if w.Session.Lives <= 0 {
		w.Session.Lives = 0
		w.Session.Phase = PhaseOver
		w.emit(core.EventLifeLost)
		w.emit(core.EventGameOver)
		return
	}

	p.X = w.cfg.Player.SpawnX
	p.Y = w.cfg.Player.SpawnY
	p.VX = 0
	p.VY = 0
	w.Camera.X = 0
	w.emit(core.EventLifeLost)
}
