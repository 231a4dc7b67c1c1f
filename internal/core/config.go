package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to derive simulated time.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDuration returns the simulated time covered by one tick.
// Non-positive tick rates fall back to 60 ticks per second.
func (c RuntimeConfig) FrameDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a duel.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score1   int  // Agent 1 hits
	Score2   int  // Agent 2 hits
	Winner   int  // 0 = none, 1 = agent 1, 2 = agent 2
	WinScore int  // Hits needed to win, 0 = endless
	GameOver bool // Whether the match has ended
	Paused   bool // Whether the match is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hits  int // Projectiles that struck an opponent this tick
}
