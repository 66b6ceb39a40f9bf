package core

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size to lay out against, the tick rate and the seed for the round.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // Simulation ticks per second
	Seed     int64 // Zero asks the platform to pick a time-based seed
}

// DefaultConfig returns the runtime used when nothing is known about the
// terminal: 80x24 at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// WithDefaults fills zero or negative fields from DefaultConfig. Seed is
// left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	d := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = d.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = d.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	return c
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State   GameState
	Changed bool // Whether anything visible changed this tick
}
