package core

// RuntimeConfig is passed to a game at (re)initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // scatters the background stars; 0 keeps the fixed pattern
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // the platform layer picks one from the clock
	}
}

// Outcome describes how a finished run ended.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeCompleted Outcome = "completed" // every level cleared
	OutcomeLost      Outcome = "lost"      // lives exhausted
)

// GameState is the snapshot a game reports to the platform.
type GameState struct {
	Score    int
	Level    int
	Lives    int
	Health   int
	InMenu   bool
	GameOver bool
	Paused   bool
	Outcome  Outcome
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventJump EventKind = iota + 1
	EventShoot
	EventCollect
	EventEnemyHit
	EventEnemyDefeated
	EventLifeLost
	EventLevelClear
	EventGameOver
	EventRestart
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventShoot:
		return "shoot"
	case EventCollect:
		return "collect"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyDefeated:
		return "enemy_defeated"
	case EventLifeLost:
		return "life_lost"
	case EventLevelClear:
		return "level_clear"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification emitted by a game tick.
// Sound playback and logging consume these; the simulation never waits on them.
type Event struct {
	Kind  EventKind
	Level int // level number the event happened on
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game is the contract between a simulation and the platform that drives it.
// The platform handles input mapping, timing, audio and rendering.
type Game interface {
	// ID returns a stable identifier used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg RuntimeConfig)

	// Resize adapts the viewport without resetting progress.
	Resize(screenW, screenH int)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into dst.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
