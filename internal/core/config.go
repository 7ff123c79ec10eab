package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // UI ticks per second (default 60), drives animation only
	Seed     int64 // RNG seed for tile spawns
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	BestScore int  // Best score for this game variant
	GameOver  bool // Whether no moves remain
	Paused    bool // Whether the game is paused
	CanUndo   bool // Whether an undo snapshot is available
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	Moved bool // A move changed the board during this tick
}

// BoardSnapshot is a read-only copy of a board, handed to the hint provider.
type BoardSnapshot struct {
	Board [][]int
	Score int
}
