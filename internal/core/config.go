package core

// RuntimeConfig carries the platform environment into a game's Reset:
// terminal dimensions, the rate the loop will drive Step at, and the RNG
// seed. A fixed seed replays the same board and targets exactly.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // 0 means the platform picks a time-based seed
}

// GameState summarizes the engine for the platform after each step: the
// score to persist and the flags the loop reacts to.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
}
