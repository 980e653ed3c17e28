package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // UI ticks per second, drives the game clock
	Seed      int64 // Mine placement seed
	CellWidth int   // Columns per board cell
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  10,
		Seed:      0, // 0 means use current time in platform layer
		CellWidth: 2,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Revealed safe cells
	Ticks    int  // Ticks since the first reveal, frozen at game end
	Moves    int  // Successful reveals, flags and chords
	GameOver bool // Whether the game has ended
	Won      bool // Set together with GameOver when every safe cell is open
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState

	// Message is a one-line status for the HUD, e.g. an ignored action.
	Message string
}
