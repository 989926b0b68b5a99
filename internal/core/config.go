package core

import "time"

// RuntimeConfig describes the terminal a session is rendered into.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for mazes and prizes (0 = time based)
}

// DefaultConfig returns a RuntimeConfig for a classic 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// ResolveSeed returns the configured seed, or a time based one when the
// seed is zero.
func (c RuntimeConfig) ResolveSeed() uint64 {
	if c.Seed != 0 {
		return uint64(c.Seed)
	}
	return uint64(time.Now().UnixNano())
}
