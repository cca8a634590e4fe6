package core

// RuntimeConfig contains configuration passed to a game session at
// initialization. Screen dimensions come from the terminal, field and
// pacing parameters from the YAML config, and the seed from the CLI.
type RuntimeConfig struct {
	ScreenW        int    // Screen width in characters
	ScreenH        int    // Screen height in characters
	FieldSize      int    // Field side length in cells
	TicksPerSecond int    // Simulation tick rate
	Seed           uint32 // RNG seed; 0 means seed from time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with the classic defaults:
// a 20x20 field stepped 10 times per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		FieldSize:      20,
		TicksPerSecond: 10,
		Seed:           0,
	}
}
