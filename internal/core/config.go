package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic effects
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the session display: what the host shows outside the
// playfield and uses to decide whether to keep ticking.
type GameState struct {
	Score    int
	Lives    int
	Coins    int
	Running  bool // Simulation steps are being taken
	Paused   bool
	GameOver bool
}

// EventKind identifies something notable that happened during a step.
type EventKind int

const (
	EventJump EventKind = iota
	EventEnemyDefeated
	EventCoinCollected
	EventPowerupCollected
	EventLifeLost
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventCoinCollected:
		return "coin_collected"
	case EventPowerupCollected:
		return "powerup_collected"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a step. Score is the session score right after the
// event; for EventGameOver it is the final score.
type Event struct {
	Kind  EventKind
	Score int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
