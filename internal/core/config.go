package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// GameState represents the current state of a game as published to the
// platform HUD every tick.
type GameState struct {
	Score    int  // Current score
	Chain    int  // Balls launched per turn
	Turn     int  // Current turn number (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is a discrete gameplay notification published alongside a step
// result. Rendering, HUD and audio collaborators consume events
// independently; they never feed back into simulation state.
type Event interface {
	// EventName returns a short stable identifier, e.g. "wall_bounce".
	EventName() string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
