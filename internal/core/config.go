package core

// Base viewport dimensions. All game coordinates live in this space;
// front ends scale it to window pixels or terminal cells.
const (
	ViewportW = 1000
	ViewportH = 800
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ViewW    float64 // Viewport width in game units
	ViewH    float64 // Viewport height in game units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewW:    ViewportW,
		ViewH:    ViewportH,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Ticks converts a duration in milliseconds to simulation ticks,
// rounding down but never below one tick for a positive duration.
func (c RuntimeConfig) Ticks(ms int) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	if ms <= 0 {
		return 0
	}
	t := ms * rate / 1000
	if t < 1 {
		t = 1
	}
	return t
}

// GameState summarizes the session for the platform after each tick.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the current run has ended
	Paused   bool // Whether gameplay is paused
	Running  bool // False once the player chose to exit the program
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
