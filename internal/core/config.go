package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Fixed simulation ticks per second (default 10)
	FrameRate int   // Render frames per second (default 30)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  10,
		FrameRate: 30,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a voyage.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Distance traveled, in whole units
	GameOver bool // Whether the ship has gone under
	Paused   bool // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
